// Package homepage builds the features section of the site's landing page:
// a logo banner above a three-column grid of About Us, Vision and Mission.
//
// HomepageFeatures renders the section with the default configuration.
// Section exposes the same renderer with the style table, asset resolver,
// banner and entries injected, which is what the server and the static
// build use.
//
// Rendering is a pure function of the Section value. The feature list is
// immutable, so the renderers may run concurrently.
package homepage
