// Package dashboard serves the operator control panel and the static assets
// directory. It must load last: the static mount at "/" would otherwise
// shadow routes registered after it.
package dashboard
