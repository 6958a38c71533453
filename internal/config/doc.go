// Package config provides configuration parsing for html5el.
//
// The configuration is stored in html5el.json, either in the working
// directory or in the user's config directory
// ($XDG_CONFIG_HOME/html5el/html5el.json). Command line flags override
// configuration values.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "indent": 2,
//	    "singleLine": false
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3030,
//	    "dir": "pages",
//	    "watch": true,
//	    "metrics": true
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
package config
