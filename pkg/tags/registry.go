package tags

// registry maps every supported kind to its definition. It is never
// written after package initialization.
var registry = map[string]Definition{
	// Document metadata and structure
	"comment":  {Open: "<!--", Close: "-->", Doc: "Defines a comment"},
	"doctype":  {Open: "<!DOCTYPE html>", Close: "", Doc: "Defines the document type"},
	"html":     {Open: "<html>", Close: "</html>", Doc: "Defines the root of an HTML document"},
	"head":     {Open: "<head>", Close: "</head>", Doc: "Defines information about the document"},
	"title":    {Open: "<title>", Close: "</title>", Doc: "Defines a title for the document"},
	"base":     {Open: "<base>", Close: "", Doc: "Specifies the base URL/target for relative URLs in a document"},
	"link":     {Open: "<link>", Close: "", Doc: "Defines the relationship between a document and ext. resources"},
	"meta":     {Open: "<meta>", Close: "", Doc: "Defines metadata about an HTML document"},
	"style":    {Open: "<style>", Close: "</style>", Doc: "Defines style information for a document"},
	"script":   {Open: "<script>", Close: "</script>", Doc: "Defines a client-side script"},
	"noscript": {Open: "<noscript>", Close: "</noscript>", Doc: "Defines alternate content for unsupp client-side scripts"},
	"body":     {Open: "<body>", Close: "</body>", Doc: "Defines the document's body"},

	// Sectioning
	"article":  {Open: "<article>", Close: "</article>", Doc: "Defines an article"},
	"aside":    {Open: "<aside>", Close: "</aside>", Doc: "Defines content aside from the page content"},
	"footer":   {Open: "<footer>", Close: "</footer>", Doc: "Defines a footer for a document or section"},
	"header":   {Open: "<header>", Close: "</header>", Doc: "Defines a header for a document or section"},
	"heading1": {Open: "<h1>", Close: "</h1>", Doc: "Defines HTML heading 1"},
	"heading2": {Open: "<h2>", Close: "</h2>", Doc: "Defines HTML heading 2"},
	"heading3": {Open: "<h3>", Close: "</h3>", Doc: "Defines HTML heading 3"},
	"heading4": {Open: "<h4>", Close: "</h4>", Doc: "Defines HTML heading 4"},
	"heading5": {Open: "<h5>", Close: "</h5>", Doc: "Defines HTML heading 5"},
	"heading6": {Open: "<h6>", Close: "</h6>", Doc: "Defines HTML heading 6"},
	"main":     {Open: "<main>", Close: "</main>", Doc: "Specifies the main content of a document"},
	"navlink":  {Open: "<nav>", Close: "</nav>", Doc: "Defines navigation links"},
	"section":  {Open: "<section>", Close: "</section>", Doc: "Defines a section in a document"},
	"address":  {Open: "<address>", Close: "</address>", Doc: "Defines contact info for the author/owner of a document"},

	// Grouping content
	"blockquote":      {Open: "<blockquote>", Close: "</blockquote>", Doc: "Defines a section that is quoted from another source"},
	"desclist":        {Open: "<dl>", Close: "</dl>", Doc: "Defines a description list"},
	"desclistterm":    {Open: "<dt>", Close: "</dt>", Doc: "Defines a term/name in a description list"},
	"desclistvalue":   {Open: "<dd>", Close: "</dd>", Doc: "Defines a description/value of a term in a desc. list"},
	"div":             {Open: "<div>", Close: "</div>", Doc: "Defines a section in a document"},
	"figure":          {Open: "<figure>", Close: "</figure>", Doc: "Specifies self-contained content"},
	"figurecaption":   {Open: "<figcaption>", Close: "</figcaption>", Doc: "Defines a caption for a <figure> element"},
	"horizontalruler": {Open: "<hr>", Close: "", Doc: "Defines a thematic change in the content"},
	"listitem":        {Open: "<li>", Close: "</li>", Doc: "Defines a list item"},
	"menu":            {Open: "<menu>", Close: "</menu>", Doc: "Defines a list/menu of commands"},
	"menuitem":        {Open: "<menuitem>", Close: "</menuitem>", Doc: "Defines a command/menu item invokable from a popup menu"},
	"orderedlist":     {Open: "<ol>", Close: "</ol>", Doc: "Defines an ordered list"},
	"paragraph":       {Open: "<p>", Close: "</p>", Doc: "Defines a paragraph"},
	"preformatted":    {Open: "<pre>", Close: "</pre>", Doc: "Defines preformatted text"},
	"unorderedlist":   {Open: "<ul>", Close: "</ul>", Doc: "Defines an unordered list"},
	"details":         {Open: "<details>", Close: "</details>", Doc: "Defines additional details that the user can view or hide"},
	"summary":         {Open: "<summary>", Close: "</summary>", Doc: "Defines a visible heading for a <details> element"},
	"dialog":          {Open: "<dialog>", Close: "</dialog>", Doc: "Defines a dialog box or window"},

	// Text-level semantics
	"hyperlink":        {Open: "<a>", Close: "</a>", Doc: "Defines a hyperlink"},
	"abbreviation":     {Open: "<abbr>", Close: "</abbr>", Doc: "Defines an abbreviation or an acronym"},
	"bold":             {Open: "<b>", Close: "</b>", Doc: "Defines bold text"},
	"direction":        {Open: "<bdi>", Close: "</bdi>", Doc: "Isolates a part of text that might be formatted in a                   different direction from other text outside it"},
	"override":         {Open: "<bdo>", Close: "</bdo>", Doc: "Overrides the current text direction"},
	"break":            {Open: "<br>", Close: "", Doc: "Defines a single line break"},
	"cite":             {Open: "<cite>", Close: "</cite>", Doc: "Defines the title of a work"},
	"code":             {Open: "<code>", Close: "</code>", Doc: "Defines a piece of computer code"},
	"define":           {Open: "<dfn>", Close: "</dfn>", Doc: "Represents the defining instance of a term"},
	"emphasis":         {Open: "<em>", Close: "</em>", Doc: "Defines emphasized text "},
	"italic":           {Open: "<i>", Close: "</i>", Doc: "Defines a part of text in an alternate voice or mood"},
	"keyinput":         {Open: "<kbd>", Close: "</kbd>", Doc: "Defines keyboard input"},
	"mark":             {Open: "<mark>", Close: "</mark>", Doc: "Defines marked/highlighted text"},
	"quote":            {Open: "<q>", Close: "</q>", Doc: "Defines a short quotation"},
	"rubynotsupported": {Open: "<rp>", Close: "</rp>", Doc: "Defines what to show for unsupp ruby annotations"},
	"rubysupported":    {Open: "<rt>", Close: "</rt>", Doc: "Defines an explanation/pronunciation of characters"},
	"ruby":             {Open: "<ruby>", Close: "</ruby>", Doc: "Defines a ruby annotation (for East Asian typography)"},
	"strikethrough":    {Open: "<s>", Close: "</s>", Doc: "Defines text that is no longer correct"},
	"sample":           {Open: "<samp>", Close: "</samp>", Doc: "Defines sample output from a computer program"},
	"small":            {Open: "<small>", Close: "</small>", Doc: "Defines smaller text"},
	"span":             {Open: "<span>", Close: "</span>", Doc: "Defines a section in a document"},
	"strong":           {Open: "<strong>", Close: "</strong>", Doc: "Defines important text"},
	"subscript":        {Open: "<sub>", Close: "</sub>", Doc: "Defines subscripted text"},
	"superscript":      {Open: "<sup>", Close: "</sup>", Doc: "Defines superscripted text"},
	"time":             {Open: "<time>", Close: "</time>", Doc: "Defines a date/time"},
	"underline":        {Open: "<u>", Close: "</u>", Doc: "Defines text that should have diff style from normal text"},
	"var":              {Open: "<var>", Close: "</var>", Doc: "Defines a variable"},
	"wordbreak":        {Open: "<wbr>", Close: "</wbr>", Doc: "Defines a possible line-break"},
	"deleted":          {Open: "<del>", Close: "</del>", Doc: "Defines text that has been deleted from a document"},
	"inserted":         {Open: "<ins>", Close: "</ins>", Doc: "Defines a text that has been inserted into a document"},

	// Embedded content and media
	"area":      {Open: "<area>", Close: "", Doc: "Defines an area inside an image-map"},
	"audio":     {Open: "<audio>", Close: "", Doc: "Defines sound content"},
	"canvas":    {Open: "<canvas>", Close: "</canvas>", Doc: "Used to draw graphics, on the fly (usually JavaScript)"},
	"embed":     {Open: "<embed>", Close: "", Doc: "Defines a container for an external (non-HTML) application"},
	"iframe":    {Open: "<iframe>", Close: "</iframe>", Doc: "Defines an inline frame"},
	"image":     {Open: "<img>", Close: "", Doc: "Defines an image"},
	"map":       {Open: "<map>", Close: "</map>", Doc: "Defines a client-side image-map"},
	"object":    {Open: "<object>", Close: "</object>", Doc: "Defines an embedded object"},
	"parameter": {Open: "<param>", Close: "", Doc: "Defines a parameter for an object"},
	"source":    {Open: "<source>", Close: "", Doc: "Defines media resources for media elms (<video> and <audio>)"},
	"track":     {Open: "<track>", Close: "", Doc: "Defines text tracks for media elements (<video> and <audio>)"},
	"video":     {Open: "<video>", Close: "</video>", Doc: "Defines a video or movie"},

	// Tables
	"table":         {Open: "<table>", Close: "</table>", Doc: "Defines a table"},
	"caption":       {Open: "<caption>", Close: "</caption>", Doc: "Defines a table caption"},
	"column":        {Open: "<col>", Close: "", Doc: "Specifies column props for each column within a <colgroup>"},
	"columngroup":   {Open: "<colgroup>", Close: "</colgroup>", Doc: "Specifies a group of columns in a table for formatting"},
	"tablebody":     {Open: "<tbody>", Close: "</tbody>", Doc: "Groups the body content in a table"},
	"tabledatacell": {Open: "<td>", Close: "</td>", Doc: "Defines a cell in a table"},
	"tablefooter":   {Open: "<tfoot>", Close: "</tfoot>", Doc: "Groups the footer content in a table"},
	"tableheadcell": {Open: "<th>", Close: "</th>", Doc: "Defines a header cell in a table"},
	"tableheader":   {Open: "<thead>", Close: "</thead>", Doc: "Groups the header content in a table"},
	"tablerow":      {Open: "<tr>", Close: "</tr>", Doc: "Defines a row in a table"},

	// Forms
	"button":       {Open: "<button>", Close: "</button>", Doc: "Defines a clickable button"},
	"datalist":     {Open: "<datalist>", Close: "</datalist>", Doc: "Specifies a list of pre-defined options for input controls"},
	"fieldset":     {Open: "<fieldset>", Close: "</fieldset>", Doc: "Groups related elements in a form"},
	"form":         {Open: "<form>", Close: "</form>", Doc: "Defines an HTML form for user input"},
	"input":        {Open: "<input>", Close: "", Doc: "Defines an input control"},
	"keygen":       {Open: "<keygen>", Close: "", Doc: "Defines a key-pair generator field (for forms)"},
	"label":        {Open: "<label>", Close: "</label>", Doc: "Defines a label for an <input> element"},
	"legend":       {Open: "<legend>", Close: "</legend>", Doc: "Defines a caption for a <fieldset> element"},
	"meter":        {Open: "<meter>", Close: "</meter>", Doc: "Defines a scalar measurement within a known range (a gauge)"},
	"optionsgroup": {Open: "<optgroup>", Close: "</optgroup>", Doc: "Defines a group of related options in a drop-down list"},
	"option":       {Open: "<option>", Close: "</option>", Doc: "Defines an option in a drop-down list"},
	"output":       {Open: "<output>", Close: "</output>", Doc: "Defines the result of a calculation"},
	"progress":     {Open: "<progress>", Close: "</progress>", Doc: "Represents the progress of a task"},
	"select":       {Open: "<select>", Close: "</select>", Doc: "Defines a drop-down list"},
	"textarea":     {Open: "<textarea>", Close: "</textarea>", Doc: "Defines a multiline input control (text area)"},
}
