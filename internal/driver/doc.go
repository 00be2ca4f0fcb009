// Package driver keeps a chromedriver build matching the installed Chrome
// present on disk.
//
// # Install Sequence
//
// Manager.Ensure checks for the expected executable first. When it exists
// nothing else happens. Otherwise:
//
//  1. The browser's version is read and reduced to its major line
//  2. The release endpoint is asked for the latest driver of that line
//  3. The driver archive is downloaded next to the driver folder
//  4. The archive is extracted and then deleted
//
// Any failure stops the sequence. Files written by earlier steps stay where
// they are, including the archive when extraction fails.
//
// # Usage
//
//	cfg, err := config.Config{ChromePath: path, Platform: "win64"}.Resolve()
//	if err != nil {
//	    return err
//	}
//
//	mgr := driver.NewManager(cfg, driver.WithLogger(logger))
//	result, err := mgr.Ensure(ctx)
//
// # Architecture
//
//   - Manager: orchestration of the install sequence
//   - Resolver: LATEST_RELEASE_{major} lookup with response validation
//   - Downloader: single-attempt HTTP download to a directory
//   - Extractor: zip extraction
//
// Nothing here retries. A transient failure is fixed by running again.
package driver
