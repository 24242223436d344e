// Package catalog holds the question bank loaded at startup. The catalog is
// read-only after Load and safe to share between goroutines without locking.
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bekmurza/satkgbot/models"
)

// TopicInfo describes one topic for listing purposes.
type TopicInfo struct {
	Name  string
	Count int
}

// Catalog is the ordered question bank plus its lookup indices. Positions
// are 1-based ranks in load order, kept as strings ("1".."n") because they
// travel through callback payloads.
type Catalog struct {
	questions []models.Question
	byPos     map[string]*models.Question

	topicIndex map[string][]string // canonical topic -> positions in order
	topicNames map[string]string   // lowercased topic -> canonical topic
	topicList  []string            // canonical topics, sorted
}

// Load reads and indexes the question bank. Any read or parse failure is
// fatal for the process: the bot cannot run without questions.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	return New(questions), nil
}

// New builds a Catalog from an already-parsed question list.
func New(questions []models.Question) *Catalog {
	c := &Catalog{
		questions:  questions,
		byPos:      make(map[string]*models.Question, len(questions)),
		topicIndex: make(map[string][]string),
		topicNames: make(map[string]string),
	}

	for i := range c.questions {
		q := &c.questions[i]
		pos := strconv.Itoa(i + 1)
		c.byPos[pos] = q

		if correct := q.CorrectLetter(); correct != "" {
			if _, ok := q.Options.Get(correct); !ok {
				log.Printf("question %s (position %s): correct letter %q is not among its options", q.ID, pos, correct)
			}
		}

		if q.Topic != "" {
			c.topicIndex[q.Topic] = append(c.topicIndex[q.Topic], pos)
		}
	}

	for topic := range c.topicIndex {
		c.topicNames[strings.ToLower(topic)] = topic
		c.topicList = append(c.topicList, topic)
	}
	sort.Strings(c.topicList)

	return c
}

// Len returns the number of questions in the bank.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// ByPosition returns the question at a 1-based position.
func (c *Catalog) ByPosition(pos string) (*models.Question, bool) {
	q, ok := c.byPos[pos]
	return q, ok
}

// PositionOf returns the global position of the question with the given id.
// First match wins; catalogs are small enough that a scan is fine.
func (c *Catalog) PositionOf(id string) (string, bool) {
	for i := range c.questions {
		if c.questions[i].ID == id {
			return strconv.Itoa(i + 1), true
		}
	}
	return "", false
}

// ByDifficulty returns the questions tagged with the given difficulty,
// preserving catalog order.
func (c *Catalog) ByDifficulty(tag string) []*models.Question {
	var out []*models.Question
	for i := range c.questions {
		if c.questions[i].Difficulty == tag {
			out = append(out, &c.questions[i])
		}
	}
	return out
}

// Topics lists all known topics sorted by name.
func (c *Catalog) Topics() []TopicInfo {
	out := make([]TopicInfo, 0, len(c.topicList))
	for _, topic := range c.topicList {
		out = append(out, TopicInfo{Name: topic, Count: len(c.topicIndex[topic])})
	}
	return out
}

// ResolveTopic matches a user-supplied topic name, case-insensitively.
// An exact match always wins; otherwise the lexicographically first topic
// whose lowercased name has the query as a prefix is chosen. Returns the
// canonical name and its positions.
func (c *Catalog) ResolveTopic(query string) (string, []string, bool) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return "", nil, false
	}

	if canonical, ok := c.topicNames[key]; ok {
		return canonical, c.topicIndex[canonical], true
	}

	for _, canonical := range c.topicList {
		if strings.HasPrefix(strings.ToLower(canonical), key) {
			return canonical, c.topicIndex[canonical], true
		}
	}

	return "", nil, false
}
