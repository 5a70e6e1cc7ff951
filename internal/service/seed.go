package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
)

// DemoToday is the day the demo data is anchored to.
var DemoToday = domain.MustParseDate("2024-01-13")

var demoActivity = map[string]int{
	"2024-01-13": 3,
	"2024-01-12": 2,
	"2024-01-11": 4,
	"2024-01-10": 1,
	"2024-01-09": 2,
	"2024-01-08": 3,
	"2024-01-07": 1,
	"2024-01-05": 2,
	"2024-01-04": 1,
	"2024-01-03": 3,
}

type demoQuestion struct {
	id         string
	title      string
	difficulty domain.Difficulty
	tags       []domain.Tag
	approach   string
	solution   string
	notes      string
	day        string
	minutes    int
}

var demoQuestions = []demoQuestion{
	{
		id: "demo-1", title: "Two Sum", difficulty: domain.DifficultyEasy,
		tags:     []domain.Tag{domain.TagArray, domain.TagTwoPointers},
		approach: "Use a hash map to store complements and find the pair in one pass.",
		solution: "func twoSum(nums []int, target int) []int {\n\tseen := map[int]int{}\n\tfor i, n := range nums {\n\t\tif j, ok := seen[target-n]; ok {\n\t\t\treturn []int{j, i}\n\t\t}\n\t\tseen[n] = i\n\t}\n\treturn nil\n}",
		notes:    "Classic problem, good for understanding hash maps.",
		day:      "2024-01-13", minutes: 25,
	},
	{
		id: "demo-2", title: "Binary Tree Inorder Traversal", difficulty: domain.DifficultyMedium,
		tags:     []domain.Tag{domain.TagTree, domain.TagStack},
		approach: "Use iterative approach with stack to simulate recursion.",
		day:      "2024-01-12", minutes: 35,
	},
	{
		id: "demo-3", title: "Longest Palindromic Substring", difficulty: domain.DifficultyMedium,
		tags:     []domain.Tag{domain.TagString, domain.TagDynamicProgramming},
		approach: "Expand around centers approach for O(n²) solution.",
		day:      "2024-01-11", minutes: 45,
	},
	{
		id: "demo-4", title: "Valid Parentheses", difficulty: domain.DifficultyEasy,
		tags:     []domain.Tag{domain.TagStack, domain.TagString},
		approach: "Use stack to match opening and closing brackets.",
		solution: "func isValid(s string) bool {\n\tpairs := map[rune]rune{')': '(', '}': '{', ']': '['}\n\tvar stack []rune\n\tfor _, c := range s {\n\t\tif open, ok := pairs[c]; ok {\n\t\t\tif len(stack) == 0 || stack[len(stack)-1] != open {\n\t\t\t\treturn false\n\t\t\t}\n\t\t\tstack = stack[:len(stack)-1]\n\t\t} else {\n\t\t\tstack = append(stack, c)\n\t\t}\n\t}\n\treturn len(stack) == 0\n}",
		day:      "2024-01-10", minutes: 20,
	},
	{
		id: "demo-5", title: "Maximum Subarray", difficulty: domain.DifficultyMedium,
		tags:     []domain.Tag{domain.TagArray, domain.TagDynamicProgramming},
		approach: "Kadane's algorithm - keep track of maximum sum ending at current position.",
		notes:    "Important DP problem, also known as Kadane's algorithm.",
		day:      "2024-01-09", minutes: 30,
	},
	{
		id: "demo-6", title: "Merge Two Sorted Lists", difficulty: domain.DifficultyEasy,
		tags:     []domain.Tag{domain.TagLinkedList},
		approach: "Use two pointers to merge lists in sorted order.",
		day:      "2024-01-08", minutes: 25,
	},
	{
		id: "demo-7", title: "Binary Search", difficulty: domain.DifficultyEasy,
		tags:     []domain.Tag{domain.TagBinarySearch, domain.TagArray},
		approach: "Classic binary search implementation.",
		day:      "2024-01-07", minutes: 15,
	},
	{
		id: "demo-8", title: "Climbing Stairs", difficulty: domain.DifficultyEasy,
		tags:     []domain.Tag{domain.TagDynamicProgramming, domain.TagMath},
		approach: "Fibonacci sequence - each step is sum of previous two steps.",
		notes:    "Classic DP problem, can be optimized to O(1) space.",
		day:      "2024-01-05", minutes: 20,
	},
}

// SeedDemo loads the demo activity and questions in one transaction.
// Activity rows are written directly so the demo questions are not
// counted twice.
func SeedDemo(ctx context.Context, uow db.UnitOfWork, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		activity := repository.NewSQLiteActivityRepo(tx)
		questions := repository.NewSQLiteQuestionRepo(tx, loc)

		log, err := domain.ParseActivityLog(demoActivity)
		if err != nil {
			return fmt.Errorf("demo activity: %w", err)
		}
		for _, d := range log.Dates() {
			if err := activity.Set(ctx, d, log.Count(d)); err != nil {
				return err
			}
		}

		for _, dq := range demoQuestions {
			minutes := dq.minutes
			day := domain.MustParseDate(dq.day)
			q := &domain.Question{
				ID:           dq.id,
				Title:        dq.title,
				Difficulty:   dq.difficulty,
				Tags:         dq.tags,
				Approach:     dq.approach,
				Solution:     dq.solution,
				Notes:        dq.notes,
				TimeSpentMin: &minutes,
				Platform:     domain.DefaultPlatform,
				CompletedAt:  day.Time(loc).Add(12 * time.Hour),
			}
			if err := questions.Create(ctx, q); err != nil {
				return fmt.Errorf("demo question %s: %w", dq.id, err)
			}
		}
		return nil
	})
}
