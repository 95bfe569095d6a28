// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file helpers shared by the configuration layer and
// the console front ends.
//
// # Usage
//
//	// Write the config file without leaving a partial file behind
//	err := util.AtomicWriteFile(path, data, 0644, 0755)
//
//	// Stream into a buffer first, then write atomically
//	err := util.AtomicWriteFunc(path, 0600, 0700, func(w io.Writer) error {
//	    _, err := line.WriteHistory(w)
//	    return err
//	})
package util
