// Package config loads the site configuration.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional site.json file, and SITE_* environment variables (optionally
// read from a .env file).
//
// # Configuration File Structure
//
//	{
//	  "title": "GDGoC Cybersecurity",
//	  "server": {"host": "0.0.0.0", "port": 8080, "shutdownTimeout": "10s"},
//	  "static": {"dir": "", "prefix": "/static/", "manifest": "dist/manifest.json"},
//	  "styles": {"map": "styles.json", "classes": {"features": "features_x1"}},
//	  "banner": {"source": "img/logobanner.svg", "maxHeight": "75px"},
//	  "build": {"output": "dist", "pretty": false},
//	  "publish": {"bucket": "my-site", "prefix": "www", "region": "us-east-1"}
//	}
//
// Nested keys map to upper-case variables with underscores, so
// server.port is SITE_SERVER_PORT and publish.bucket is SITE_PUBLISH_BUCKET.
package config
