// SPDX-License-Identifier: Apache-2.0

package cmd

import "errors"

var (
	errTOCPathRequired = errors.New("--toc is required")
	errDestDBRequired  = errors.New("--dest-db is required")
)
