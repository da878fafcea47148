// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"fmt"
	"strings"
)

// discoverSchema is invoked for every SCHEMA entry, in TOC order. The
// dump property this depends on — every SCHEMA entry precedes any
// non-SCHEMA entry that references it — is guaranteed by pg_dump, not
// re-checked here.
func (c *RenameContext) discoverSchema(tag, owner string) error {
	if !c.origDBNameKnown {
		const dboSuffix = "_dbo"
		if !strings.HasSuffix(tag, dboSuffix) {
			return fmt.Errorf("unexpected first schema tag shape: %q does not end in %q", tag, dboSuffix)
		}
		c.OrigDBName = strings.TrimSuffix(tag, dboSuffix)
		c.origDBNameKnown = true
		c.Owners[tag] = c.DestDBName + dboSuffix
	}

	prefix := c.OrigDBName + "_"
	if !strings.HasPrefix(tag, prefix) {
		return fmt.Errorf("unexpected schema tag shape: %q does not begin with %q", tag, prefix)
	}
	suffix := strings.TrimPrefix(tag, prefix)
	c.Schemas[tag] = c.DestDBName + "_" + suffix

	if strings.HasPrefix(owner, prefix) {
		ownerSuffix := strings.TrimPrefix(owner, prefix)
		c.Owners[owner] = c.DestDBName + "_" + ownerSuffix
	}
	return nil
}
