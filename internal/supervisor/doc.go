// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// Package supervisor runs the long-lived parts of the service under a
// suture supervision tree. The HTTP server lives in its own child
// supervisor so a crash there restarts the listener without tearing
// down the rest of the process.
package supervisor
