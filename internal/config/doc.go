// Package config loads cafe.yaml.
//
// Every field has a default from New, so the file is optional and may set
// only what differs. CAFE_* environment variables override the file.
//
// # Configuration File Structure
//
//	server:
//	  addr: ":8080"
//	  secret: "at-least-sixteen-bytes"
//	  session_ttl: 12h
//	data:
//	  path: data/cafe.db
//	uploads:
//	  backend: s3
//	  s3:
//	    bucket: cafe-gallery
//	    region: ap-northeast-1
//	log:
//	  level: debug
//	  format: json
//
// Validate reports problems as *errors.CafeError values pointing at the
// offending line when the config came from a file.
package config
