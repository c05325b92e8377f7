//go:build !chainmap_opt_enablepadding

package chainmap

// chainedMapPadSize is zero unless built with chainmap_opt_enablepadding.
const chainedMapPadSize = 0
