package domain

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the accepted difficulties in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Rank orders difficulties Easy < Medium < Hard. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 4
	}
}

// ParseDifficulty matches case-insensitively against the accepted set.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if equalFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

type Tag string

const (
	TagArray              Tag = "Array"
	TagString             Tag = "String"
	TagLinkedList         Tag = "LinkedList"
	TagTree               Tag = "Tree"
	TagGraph              Tag = "Graph"
	TagDynamicProgramming Tag = "DynamicProgramming"
	TagGreedy             Tag = "Greedy"
	TagBacktracking       Tag = "Backtracking"
	TagBinarySearch       Tag = "BinarySearch"
	TagTwoPointers        Tag = "TwoPointers"
	TagSlidingWindow      Tag = "SlidingWindow"
	TagStack              Tag = "Stack"
	TagQueue              Tag = "Queue"
	TagHeap               Tag = "Heap"
	TagSorting            Tag = "Sorting"
	TagMath               Tag = "Math"
	TagBitManipulation    Tag = "BitManipulation"
)

// Tags is the canonical, display-ordered tag catalogue.
var Tags = []Tag{
	TagArray, TagString, TagLinkedList, TagTree, TagGraph, TagDynamicProgramming,
	TagGreedy, TagBacktracking, TagBinarySearch, TagTwoPointers, TagSlidingWindow,
	TagStack, TagQueue, TagHeap, TagSorting, TagMath, TagBitManipulation,
}

// ParseTag matches case-insensitively against the catalogue.
func ParseTag(s string) (Tag, bool) {
	for _, t := range Tags {
		if equalFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// Intensity buckets a day's activity count for heat-map display.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
	IntensityMax
)

func (i Intensity) String() string {
	switch i {
	case IntensityNone:
		return "none"
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	case IntensityMax:
		return "max"
	default:
		return "unknown"
	}
}

// MarshalText renders the bucket name in JSON/YAML output.
func (i Intensity) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// DefaultPlatform is used when a question is logged without one.
const DefaultPlatform = "LeetCode"

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
