package analysis

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"bookstats/internal/models"
)

var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// DistinctTitles counts records with distinct titles.
func DistinctTitles(books []models.Book) Answer {
	seen := make(map[string]struct{}, len(books))

	for _, b := range books {
		seen[b.Title] = struct{}{}
	}

	return Count(len(seen))
}

// MostEditionsTitle returns the title shared by the most records. Ties go
// to the lexicographically smallest title.
func MostEditionsTitle(books []models.Book) Answer {
	counts := make(map[string]int)

	for _, b := range books {
		counts[b.Title]++
	}

	title, ok := maxKey(counts, func(a, b string) bool { return a < b })
	if !ok {
		return NoData()
	}

	return Scalar(title)
}

// GoodreadsCount sums the goodreads flag. The question asks for books
// without an id, but this counts the books that have one.
func GoodreadsCount(books []models.Book) Answer {
	n := 0

	for _, b := range books {
		if b.HasGoodreadsID {
			n++
		}
	}

	return Count(n)
}

// MultiAuthorCount counts records listing more than one author.
func MultiAuthorCount(books []models.Book) Answer {
	n := 0

	for _, b := range books {
		if len(b.Authors) > 1 {
			n++
		}
	}

	return Count(n)
}

// BooksPerPublisher counts records per publisher, most frequent first.
// Publishers with equal counts keep the order they were first seen in.
func BooksPerPublisher(books []models.Book) Answer {
	counts := make(map[string]int)

	var order []string

	for _, b := range books {
		for _, p := range b.Publishers {
			if _, ok := counts[p]; !ok {
				order = append(order, p)
			}

			counts[p]++
		}
	}

	if len(order) == 0 {
		return NoData()
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	rows := make([][]string, 0, len(order))
	for _, p := range order {
		rows = append(rows, []string{p, strconv.Itoa(counts[p])})
	}

	return Table([]string{"publisher", "count"}, rows)
}

// MedianPages is the median of the known page counts.
func MedianPages(books []models.Book) Answer {
	var pages []int

	for _, b := range books {
		if b.NumberOfPages != nil {
			pages = append(pages, *b.NumberOfPages)
		}
	}

	if len(pages) == 0 {
		return NoData()
	}

	sort.Ints(pages)

	mid := len(pages) / 2
	median := float64(pages[mid])

	if len(pages)%2 == 0 {
		median = float64(pages[mid-1]+pages[mid]) / 2
	}

	return Scalar(strconv.FormatFloat(median, 'f', -1, 64))
}

// BusiestMonth names the month most dates fall in, counting only records
// whose raw date named a month. Ties go to the earlier month.
func BusiestMonth(books []models.Book) Answer {
	var counts [13]int

	found := false

	for _, b := range books {
		if b.HasMonthInfo && b.PublishDate != nil {
			counts[b.PublishDate.Month()]++
			found = true
		}
	}

	if !found {
		return NoData()
	}

	best := time.January
	for m := time.February; m <= time.December; m++ {
		if counts[m] > counts[best] {
			best = m
		}
	}

	return Scalar(best.String())
}

// LongestWords lists every record whose longest word reaches the longest
// length found across the collection, with that word.
func LongestWords(books []models.Book) Answer {
	type candidate struct {
		title string
		word  string
	}

	var (
		candidates []candidate
		maxLen     int
	)

	for _, b := range books {
		if b.Description == "" && b.FirstSentence == "" {
			continue
		}

		word := longestWord(b.Description + " " + b.FirstSentence)
		candidates = append(candidates, candidate{title: b.Title, word: word})

		if len(word) > maxLen {
			maxLen = len(word)
		}
	}

	if maxLen == 0 {
		return NoData()
	}

	var rows [][]string

	for _, c := range candidates {
		if len(c.word) == maxLen {
			rows = append(rows, []string{c.title, c.word})
		}
	}

	return Table([]string{"title", "longest_word"}, rows)
}

// longestWord returns the first of the longest ASCII letter runs in text.
func longestWord(text string) string {
	longest := ""

	for _, w := range wordPattern.FindAllString(text, -1) {
		if len(w) > len(longest) {
			longest = w
		}
	}

	return longest
}

// LastPublished returns the title with the latest publish date. The first
// record wins a tie.
func LastPublished(books []models.Book) Answer {
	var latest *models.Book

	for i := range books {
		b := &books[i]
		if b.PublishDate == nil {
			continue
		}

		if latest == nil || b.PublishDate.After(*latest.PublishDate) {
			latest = b
		}
	}

	if latest == nil {
		return NoData()
	}

	return Scalar(latest.Title)
}

// LatestModifiedYear is the year of the most recent last_modified value.
func LatestModifiedYear(books []models.Book) Answer {
	year, found := 0, false

	for _, b := range books {
		if b.LastModified == nil {
			continue
		}

		if !found || b.LastModified.Year() > year {
			year, found = b.LastModified.Year(), true
		}
	}

	if !found {
		return NoData()
	}

	return Count(year)
}

// SecondBookOfTopAuthor finds the author with the most distinct titles and
// returns the second of their dated records in publish order.
func SecondBookOfTopAuthor(books []models.Book) Answer {
	titles := make(map[string]map[string]struct{})

	for _, b := range books {
		for _, a := range b.Authors {
			if titles[a] == nil {
				titles[a] = make(map[string]struct{})
			}

			titles[a][b.Title] = struct{}{}
		}
	}

	counts := make(map[string]int, len(titles))
	for a, set := range titles {
		counts[a] = len(set)
	}

	author, ok := maxKey(counts, func(a, b string) bool { return a < b })
	if !ok {
		return NoData()
	}

	var dated []models.Book

	for _, b := range books {
		for _, a := range b.Authors {
			if a == author && b.PublishDate != nil {
				dated = append(dated, b)
			}
		}
	}

	if len(dated) < 2 {
		return NoData()
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].PublishDate.Before(*dated[j].PublishDate)
	})

	return Scalar(dated[1].Title)
}

type publisherAuthor struct {
	publisher string
	author    string
}

// TopPublisherAuthor counts every (publisher, author) combination of each
// record and returns the most frequent. Ties go to the lexicographically
// smallest pair.
func TopPublisherAuthor(books []models.Book) Answer {
	counts := make(map[publisherAuthor]int)

	for _, b := range books {
		for _, p := range b.Publishers {
			for _, a := range b.Authors {
				counts[publisherAuthor{p, a}]++
			}
		}
	}

	pair, ok := maxKey(counts, func(x, y publisherAuthor) bool {
		if x.publisher != y.publisher {
			return x.publisher < y.publisher
		}

		return x.author < y.author
	})
	if !ok {
		return NoData()
	}

	return Pair(pair.publisher, pair.author)
}

// maxKey returns the key with the highest count, breaking ties with less.
func maxKey[K comparable](counts map[K]int, less func(a, b K) bool) (K, bool) {
	var (
		best  K
		count int
		found bool
	)

	for k, c := range counts {
		if !found || c > count || (c == count && less(k, best)) {
			best, count, found = k, c, true
		}
	}

	return best, found
}
