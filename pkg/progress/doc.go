// Package progress shows a terminal spinner while a long call runs.
//
//	sp := progress.Start(os.Stderr, "Thinking ...")
//	defer sp.Stop()
package progress
