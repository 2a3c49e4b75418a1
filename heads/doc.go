// Package heads walks a decoded schematic tag tree and extracts the
// player-head profiles stored on skull block entities.
//
// Schematic files span years of format revisions, so every field the
// extractor touches is looked up through an ordered alias list (current
// spelling first, legacy spellings after) and every shape mismatch
// degrades to "absent" rather than an error. Extraction never fails: the
// worst case is an empty result.
package heads
