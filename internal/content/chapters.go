// Package content is the chapter and section table the browser lists.
package content

// Section is one topic inside a chapter. Demo is empty when the section
// has no interactive controller.
type Section struct {
	ID    string
	Label string
	Demo  string
}

// Chapter groups sections under a numbered heading.
type Chapter struct {
	ID       string
	Num      string
	Label    string
	Sections []Section
}

var chapters = []Chapter{
	{
		ID: "ch0", Num: "0", Label: "Introduction",
		Sections: []Section{
			{ID: "sec-direct", Label: "Direct Manipulation", Demo: "spring"},
			{ID: "sec-feedback", Label: "The Feedback Loop"},
		},
	},
	{
		ID: "ch1", Num: "1", Label: "Gestures",
		Sections: []Section{
			{ID: "sec-touchdown", Label: "Touch Down", Demo: "tap"},
			{ID: "sec-tap", Label: "Tap", Demo: "tap"},
			{ID: "sec-doubletap", Label: "Double Tap", Demo: "tap"},
			{ID: "sec-longpress", Label: "Long Press", Demo: "tap"},
			{ID: "sec-swipe", Label: "Swipe", Demo: "carousel"},
			{ID: "sec-drag", Label: "Drag / Pan", Demo: "momentum"},
			{ID: "sec-axislock", Label: "Axis Lock", Demo: "tap"},
			{ID: "sec-pinch", Label: "Pinch / Zoom"},
			{ID: "sec-fling", Label: "Fling", Demo: "momentum"},
			{ID: "sec-arbitration", Label: "Gesture Competition"},
			{ID: "sec-summary", Label: "Putting it together"},
		},
	},
	{
		ID: "ch2", Num: "2", Label: "Physics Feel",
		Sections: []Section{
			{ID: "sec-momentum", Label: "Momentum", Demo: "momentum"},
			{ID: "sec-friction", Label: "Friction", Demo: "momentum"},
			{ID: "sec-decay", Label: "Decay Prediction", Demo: "snap"},
			{ID: "sec-spring", Label: "Springs", Demo: "spring"},
			{ID: "sec-elastic", Label: "Elastic", Demo: "spring"},
			{ID: "sec-snap", Label: "Snap Points", Demo: "snap"},
			{ID: "sec-rubber", Label: "Rubber Band / Overscroll", Demo: "overscroll"},
			{ID: "sec-bounce", Label: "Bounce-Back", Demo: "overscroll"},
			{ID: "sec-physics-summary", Label: "Putting it together"},
		},
	},
	{
		ID: "ch3", Num: "3", Label: "Interaction Patterns",
		Sections: []Section{
			{ID: "sec-pull-refresh", Label: "Pull to Refresh", Demo: "pull"},
			{ID: "sec-carousel", Label: "Carousel", Demo: "carousel"},
			{ID: "sec-reorder", Label: "Draggable Grid"},
			{ID: "sec-rubber-slider", Label: "Rubber Band Slider", Demo: "overscroll"},
		},
	},
	{
		ID: "ch4", Num: "4", Label: "Design Insights",
		Sections: []Section{
			{ID: "sec-spatial", Label: "Spatial Consistency"},
			{ID: "sec-frequency", Label: "Frequency & Novelty"},
			{ID: "sec-visibility", Label: "Touch Visibility"},
			{ID: "sec-discoverability", Label: "Discoverability"},
			{ID: "sec-a11y", Label: "Accessibility"},
			{ID: "sec-references", Label: "References"},
		},
	},
}

// Chapters returns the table in reading order.
func Chapters() []Chapter {
	return chapters
}

// Entry is a section flattened with its chapter.
type Entry struct {
	Chapter Chapter
	Section Section
}

// Entries flattens every chapter's sections in reading order.
func Entries() []Entry {
	var out []Entry
	for _, ch := range chapters {
		for _, s := range ch.Sections {
			out = append(out, Entry{Chapter: ch, Section: s})
		}
	}
	return out
}

// FindSection looks a section up by id.
func FindSection(id string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Section.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// FirstSectionFor returns the first section that opens demo id.
func FirstSectionFor(demo string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Section.Demo == demo {
			return e, true
		}
	}
	return Entry{}, false
}
