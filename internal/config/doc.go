// Package config resolves driverup's settings from flags and the process
// environment.
//
// Settings are gathered once at startup into an immutable Config value that
// is passed explicitly to the components that need it. The Config also
// derives the on-disk layout:
//
//	{output}/chromedriver-{platform}/              extracted driver folder
//	{output}/chromedriver-{platform}/chromedriver  executable (".exe" on win32/win64)
//	{output}/chromedriver-{platform}.zip           transient archive
//
// A missing browser path or platform tag is a configuration error reported
// by Resolve before any network or filesystem activity takes place.
package config
