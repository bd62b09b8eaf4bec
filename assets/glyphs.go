package assets

import "strings"

// Emoji used for entity sprites.
const (
	GlyphIdle        = "🧘"
	GlyphImpulse     = "🏃"
	GlyphImpact      = "🥊"
	GlyphMuncher     = "👾"
	GlyphMuncherBite = "👹"
	GlyphSpyware     = "🕷️"
	GlyphDoor        = "🚪"
	GlyphDoorBlocked = "⛔"
	GlyphDoorLocked  = "🔒"
	GlyphStairsDown  = "🔽"
	GlyphStun        = "💫"
	GlyphUnknown     = "❓"
)

// Sprites maps entity sprite keys to their animation frames. An entity's
// Frame picks an element modulo the slice length.
var Sprites = map[string][]string{
	"player-1":        {GlyphIdle},
	"player-2":        {GlyphImpulse},
	"player-3":        {GlyphImpact},
	"muncher":         {GlyphMuncher, GlyphMuncher, GlyphMuncherBite, GlyphMuncherBite},
	"spyware":         {GlyphSpyware},
	"door-v":          {GlyphDoor},
	"door-h":          {GlyphDoor},
	"door-v-blocked":  {GlyphDoorBlocked},
	"door-h-blocked":  {GlyphDoorBlocked},
	"door-v-locked":   {GlyphDoorLocked},
	"door-h-locked":   {GlyphDoorLocked},
	"stun-effect":     {GlyphStun},
	"stairs-down":     {GlyphStairsDown},
	"connection-glow": {"◦", "○", "◎", "●", "◎", "○"},
}

// Sprite returns the glyph for key at frame. Connection pieces share one
// glow animation whatever their prefix and links are.
func Sprite(key string, frame int) string {
	if strings.Contains(key, "-connection-piece-") {
		key = "connection-glow"
	}
	frames, ok := Sprites[key]
	if !ok || len(frames) == 0 {
		return GlyphUnknown
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}
