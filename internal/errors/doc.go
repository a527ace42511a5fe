// Package errors provides the coded errors the site CLI and server report.
//
// Every failure the tool can explain carries a code from the registry
// ("E100" config, "E200" assets, "E300" render, "E400" server,
// "E500" publish) together with a detail line and a suggestion:
//
//	return errors.New("E101").
//	    WithDetail("site.json: unexpected end of JSON input").
//	    WithSuggestion("Check that site.json is valid JSON")
//
// SiteError implements Unwrap, so errors.Is and errors.As from the standard
// library see through it.
package errors
