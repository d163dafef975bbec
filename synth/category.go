// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"
)

// Category is either an Effect or a Mood. The set is closed: only the
// types in this package implement it.
type Category interface {
	String() string
	Valid() bool
	family() family
}

type family int

const (
	familyEffect family = iota
	familyMusic
)

// Effect selects one of the fixed sound effect recipes.
type Effect int

const (
	Explosion Effect = iota
	Laser
	Whoosh
	AmbientEffect
	Notification
	Click
	PowerUp
	Alarm

	effectCount
)

var effectNames = [effectCount]string{
	Explosion:     "explosion",
	Laser:         "laser",
	Whoosh:        "whoosh",
	AmbientEffect: "ambient",
	Notification:  "notification",
	Click:         "click",
	PowerUp:       "power-up",
	Alarm:         "alarm",
}

func (e Effect) String() string {
	if !e.Valid() {
		return fmt.Sprintf("effect(%d)", int(e))
	}
	return effectNames[e]
}

// Valid reports whether e is a member of the catalog.
func (e Effect) Valid() bool { return e >= 0 && e < effectCount }

func (Effect) family() family { return familyEffect }

// Mood selects one of the layered music presets.
type Mood int

const (
	Calm Mood = iota
	Energetic
	Mysterious
	Happy
	Sad
	Epic
	AmbientMood
	Tension

	moodCount
)

var moodNames = [moodCount]string{
	Calm:        "calm",
	Energetic:   "energetic",
	Mysterious:  "mysterious",
	Happy:       "happy",
	Sad:         "sad",
	Epic:        "epic",
	AmbientMood: "ambient",
	Tension:     "tension",
}

func (m Mood) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mood(%d)", int(m))
	}
	return moodNames[m]
}

// Valid reports whether m is a member of the catalog.
func (m Mood) Valid() bool { return m >= 0 && m < moodCount }

func (Mood) family() family { return familyMusic }

// Effects lists every effect in catalog order.
func Effects() []Effect {
	out := make([]Effect, 0, effectCount)
	for e := range effectCount {
		out = append(out, e)
	}
	return out
}

// Moods lists every mood in catalog order.
func Moods() []Mood {
	out := make([]Mood, 0, moodCount)
	for m := range moodCount {
		out = append(out, m)
	}
	return out
}

// ParseEffect maps a name such as "power-up" to its Effect.
// Matching ignores case, and underscores are accepted in place of dashes.
func ParseEffect(name string) (Effect, error) {
	key := normalizeName(name)
	for e, n := range effectNames {
		if n == key {
			return Effect(e), nil
		}
	}
	return 0, fmt.Errorf("%w: effect %q", ErrUnknownCategory, name)
}

// ParseMood maps a name such as "tension" to its Mood.
func ParseMood(name string) (Mood, error) {
	key := normalizeName(name)
	for m, n := range moodNames {
		if n == key {
			return Mood(m), nil
		}
	}
	return 0, fmt.Errorf("%w: mood %q", ErrUnknownCategory, name)
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
