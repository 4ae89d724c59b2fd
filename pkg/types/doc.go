// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the interview-engine pipeline:
// the document analysis consumed from the external analysis stage, the
// interview questions produced by generation, the sensitivity report, and the
// assembled conversation flow.
//
// Field tags use camelCase so that analysis files and exported flows share one
// vocabulary with the tools on either side of the pipeline.
package types
