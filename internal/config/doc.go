// Package config loads vroute project configuration.
//
// The configuration is stored in vroute.json or vroute.yaml at the project
// root. Zero fields are filled with defaults after loading.
//
// # Configuration File Structure
//
//	{
//	  "name": "demo",
//	  "logLevel": "info",
//	  "initialPath": "/",
//	  "bridge": {
//	    "addr": ":8080",
//	    "path": "/history"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "vroute"
//	  },
//	  "snapshot": {
//	    "dir": "snapshots",
//	    "paths": ["/", "/about", "/profile/settings"],
//	    "s3": {
//	      "bucket": "my-site",
//	      "prefix": "pages",
//	      "region": "eu-west-1"
//	    }
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Bridge:", cfg.Bridge.Addr)
package config
