package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/challenge"
	"codequest/internal/domain/hackathon"
	"codequest/internal/domain/resource"
)

// Seed loads the sample catalog (challenges, learning resources, hackathons)
// so a fresh in-memory deployment is not empty.
func Seed(ctx context.Context, challenges *ChallengeStore, resources *ResourceStore, hackathons *HackathonStore) error {
	now := time.Now().UTC()

	sampleChallenges := []challenge.Challenge{
		{
			ID:               uuid.New(),
			Title:            "Two Sum",
			Description:      "Find two numbers that add up to target",
			Difficulty:       "Easy",
			Category:         "Arrays",
			ProblemStatement: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Examples:         []string{"Input: nums = [2,7,11,15], target = 9\nOutput: [0,1]"},
			TestCases:        []string{"[2,7,11,15], 9 -> [0,1]"},
			StarterCode:      "func twoSum(nums []int, target int) []int {\n\t// Your code here\n}",
			CreatedAt:        now,
		},
		{
			ID:               uuid.New(),
			Title:            "Valid Parentheses",
			Description:      "Check if parentheses are properly closed",
			Difficulty:       "Easy",
			Category:         "Stack",
			ProblemStatement: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
			Examples:         []string{`Input: s = "()" Output: true`, `Input: s = "()[]{}" Output: true`},
			TestCases:        []string{`"()" -> true`, `"()[]{}" -> true`, `"(]" -> false`},
			StarterCode:      "func isValid(s string) bool {\n\t// Your code here\n}",
			CreatedAt:        now.Add(time.Millisecond),
		},
	}

	sampleResources := []resource.LearningResource{
		{
			ID:          uuid.New(),
			Title:       "JavaScript Fundamentals",
			Description: "Master the core concepts of JavaScript including variables, functions, and object-oriented programming.",
			Duration:    "4 hours",
			Category:    "Programming Languages",
			Content:     "Comprehensive JavaScript course content...",
			Difficulty:  "Beginner",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       "Data Structures & Algorithms",
			Description: "Deep dive into essential data structures and algorithmic thinking for competitive programming.",
			Duration:    "8 hours",
			Category:    "Computer Science",
			Content:     "DSA course content...",
			Difficulty:  "Intermediate",
			CreatedAt:   now.Add(time.Millisecond),
		},
	}

	sampleHackathons := []hackathon.Hackathon{
		{
			ID:              uuid.New(),
			Title:           "AI Innovation Challenge",
			Description:     "Build innovative AI-powered applications that solve real-world problems.",
			Status:          hackathon.StatusLive,
			StartDate:       now.Add(-24 * time.Hour),
			EndDate:         now.Add(2 * 24 * time.Hour),
			PrizePool:       "$10,000",
			MaxParticipants: 500,
			CreatedAt:       now,
		},
		{
			ID:              uuid.New(),
			Title:           "Mobile App Challenge",
			Description:     "Design and develop innovative mobile applications for iOS and Android platforms.",
			Status:          hackathon.StatusUpcoming,
			StartDate:       now.Add(3 * 24 * time.Hour),
			EndDate:         now.Add(10 * 24 * time.Hour),
			PrizePool:       "$8,000",
			MaxParticipants: 300,
			CreatedAt:       now.Add(time.Millisecond),
		},
	}

	for _, c := range sampleChallenges {
		if err := challenges.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, r := range sampleResources {
		if err := resources.Create(ctx, r); err != nil {
			return err
		}
	}
	for _, h := range sampleHackathons {
		if err := hackathons.Create(ctx, h); err != nil {
			return err
		}
	}
	return nil
}
