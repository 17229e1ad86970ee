// Package deskmate is the Composition Root for the Deskmate utilities.
//
// It connects the record store (pkg/core) with the file adapter
// (pkg/adapters/fs) and exposes the two stores the command line works with:
//
//   - **Schedule**: tasks with a title, a "YYYY-MM-DD HH:MM" datetime and an
//     optional description, viewed in chronological order.
//   - **Notepad**: notes with a title, free-form content and a creation
//     timestamp, viewed in insertion order.
//
// Each store lives in a single JSON file that is loaded whole and rewritten
// whole on every change. Identifiers are assigned as max(existing)+1.
//
// Usage:
//
//	tasks, err := deskmate.OpenSchedule(ctx, deskmate.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	task, err := tasks.Add(ctx, deskmate.Task{Title: "Stand-up", Datetime: "2026-03-01 09:00"})
package deskmate
