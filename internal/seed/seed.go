// Package seed loads a starter set of computer-science interview questions
// into the catalogue, so fresh deployments can run interviews before the
// generator has produced anything.
package seed

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/utils"
)

type starterQuestion struct {
	text       string
	category   models.Category
	difficulty int
}

var starterQuestions = []starterQuestion{
	// Data structures
	{"Explain the difference between a stack and a queue.", models.CategoryDataStructures, 2},
	{"What is a B-tree and what are its applications?", models.CategoryDataStructures, 4},
	{"Explain how a hash table works and what is collision resolution?", models.CategoryDataStructures, 3},
	{"What is a Red-Black tree and why is it useful?", models.CategoryDataStructures, 4},
	{"Describe the difference between linked lists and arrays.", models.CategoryDataStructures, 2},
	{"What is a Trie and when would you use it?", models.CategoryDataStructures, 3},
	{"Explain how a heap data structure works.", models.CategoryDataStructures, 3},
	{"Explain the concept of consistent hashing.", models.CategoryDataStructures, 5},

	// Algorithms
	{"What is the time complexity of binary search?", models.CategoryAlgorithms, 3},
	{"Explain Dijkstra's algorithm and its applications.", models.CategoryAlgorithms, 4},
	{"What is dynamic programming and when is it used?", models.CategoryAlgorithms, 4},
	{"Explain the quicksort algorithm and its time complexity.", models.CategoryAlgorithms, 3},
	{"What is the difference between DFS and BFS?", models.CategoryAlgorithms, 3},
	{"Explain the concept of divide and conquer algorithms.", models.CategoryAlgorithms, 3},
	{"What is the traveling salesman problem and why is it important?", models.CategoryAlgorithms, 4},
	{"What is the time complexity of the Floyd-Warshall algorithm?", models.CategoryAlgorithms, 5},

	// Databases
	{"Explain the ACID properties in databases.", models.CategoryDatabases, 4},
	{"Describe the CAP theorem.", models.CategoryDatabases, 4},
	{"What is database normalization and why is it important?", models.CategoryDatabases, 3},
	{"Explain the difference between clustered and non-clustered indexes.", models.CategoryDatabases, 3},
	{"What is a deadlock in databases and how can it be prevented?", models.CategoryDatabases, 4},
	{"Explain the concept of database sharding.", models.CategoryDatabases, 4},
	{"What are the differences between NoSQL and SQL databases?", models.CategoryDatabases, 3},
	{"Explain how eventual consistency works in distributed systems.", models.CategoryDatabases, 5},

	// Operating systems
	{"What is virtual memory?", models.CategoryOperatingSystems, 3},
	{"What is a race condition?", models.CategoryOperatingSystems, 3},
	{"Explain the difference between processes and threads.", models.CategoryOperatingSystems, 3},
	{"What is context switching in operating systems?", models.CategoryOperatingSystems, 3},
	{"Explain the concept of deadlock and its prevention.", models.CategoryOperatingSystems, 4},
	{"What is paging in operating systems?", models.CategoryOperatingSystems, 3},
	{"Describe the producer-consumer problem.", models.CategoryOperatingSystems, 4},
	{"Describe how virtual memory page replacement algorithms work.", models.CategoryOperatingSystems, 5},

	// Object-oriented programming
	{"What is polymorphism in OOP?", models.CategoryOOP, 2},
	{"Differentiate between abstraction and encapsulation.", models.CategoryOOP, 2},
	{"Explain the SOLID principles in OOP.", models.CategoryOOP, 4},
	{"What is dependency injection and why is it useful?", models.CategoryOOP, 3},
	{"Explain the concept of inheritance and its types.", models.CategoryOOP, 2},
	{"What is method overloading vs method overriding?", models.CategoryOOP, 2},
	{"Describe the singleton pattern and its use cases.", models.CategoryOOP, 3},
	{"What are design patterns and explain the MVC pattern.", models.CategoryOOP, 4},
}

// Load upserts the starter questions under the given job title. Rows with
// the same text and job title are left untouched, so the loader is safe to
// run repeatedly. Returns how many rows were created and how many already
// existed.
func Load(questions *repositories.QuestionRepository, jobTitle string, logger *zap.Logger) (int, int, error) {
	jobTitle = utils.NormalizeJobTitle(jobTitle)

	created := 0
	skipped := 0
	for _, sq := range starterQuestions {
		question := &models.Question{
			QuestionText: sq.text,
			JobTitle:     jobTitle,
			Category:     sq.category,
			Difficulty:   sq.difficulty,
		}
		wasCreated, err := questions.CreateIfAbsent(question)
		if err != nil {
			return created, skipped, fmt.Errorf("failed to load question %q: %w", sq.text, err)
		}
		if wasCreated {
			created++
		} else {
			skipped++
		}
	}

	logger.Info("Starter questions loaded",
		zap.String("job_title", jobTitle),
		zap.Int("created", created),
		zap.Int("skipped", skipped))
	return created, skipped, nil
}
