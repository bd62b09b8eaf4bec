package assets

// DepthNames maps depth (1-indexed) to its sector name. Deeper levels reuse
// the last entry.
var DepthNames = []string{
	"",
	"Swap Partition",
	"Page Cache",
	"Kernel Heap",
	"Interrupt Vector",
	"Root Sector",
}

// DepthName returns the sector name for depth.
func DepthName(depth int) string {
	if depth < 1 {
		depth = 1
	}
	if depth >= len(DepthNames) {
		depth = len(DepthNames) - 1
	}
	return DepthNames[depth]
}

// DepthLore holds atmospheric snippets per depth (index 0 unused). One is
// picked at random on entry.
var DepthLore = [][]string{
	{},
	{
		"Stale pages drift past. Nobody has read them in years.",
		"Something has been chewing on the free list.",
		"A sign reads: SWAP RESPONSIBLY. It has been swapped out twice.",
	},
	{
		"Every block here is a copy of something better.",
		"The dirty bit on this sector is very, very dirty.",
		"Eviction notices line the corridors. Least recently used first.",
	},
	{
		"Allocations pile up like snowdrifts. The collector never comes.",
		"A dangling pointer sways in a breeze that should not exist.",
		"Munchers nest where the fragmentation is worst.",
	},
	{
		"Every doorway here is a handler. Most of them are not handling it well.",
		"The air hums at the clock frequency.",
		"You hear a spurious wakeup. It was probably nothing.",
	},
	{
		"The boot record is written on the walls in a hand you almost recognise.",
		"Nothing down here has ever been backed up.",
		"The deeper sectors do not appear in any table.",
	},
}

// LoreOpening is shown when the game begins.
const LoreOpening = `Something is eating the disk.
Munchers breed in the free space and spyware watches from the cache.
Descend the staircase sectors and find out how deep it goes.`
