// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package khttp

const (
	// ContentTypeJSON default application json
	// content type as defined by Kopexa Guidelines
	ContentTypeJSON = "application/json; charset=utf-8"
)
