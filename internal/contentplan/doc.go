// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package contentplan holds the pure conversions between backend string
// fields of content plan entities and the structured state edited in the
// console: the Meta SEO mini-format, month period labels, link and character
// count normalization, the technical specification outline and the
// create/edit decision of the TZ action.
//
// Nothing in this package performs I/O and nothing returns an error:
// malformed input degrades to empty values.
package contentplan
