package analysis

import "bookstats/internal/models"

// Question pairs a report question with the function answering it.
type Question struct {
	Number int
	Text   string
	Solve  func(books []models.Book) Answer
}

// Questions returns the report questions in the order they are answered.
func Questions() []Question {
	return []Question{
		{1, "1. How many different books are in the list?", DistinctTitles},
		{2, "2. What is the book with the most number of different ISBNs?", MostEditionsTitle},
		{3, "3. How many books don’t have a goodreads id?", GoodreadsCount},
		{4, "4. How many books have more than one author?", MultiAuthorCount},
		{5, "5. What is the number of books published per publisher?", BooksPerPublisher},
		{6, "6. What is the median number of pages for books in this list?", MedianPages},
		{7, "7. What is the month with the most number of published books?", BusiestMonth},
		{8, "8. What is/are the longest word/s that appear/s either in a book’s description or in the first sentence of a book? In which book (title) it appears?", LongestWords},
		{9, "9. What was the last book published in the list?", LastPublished},
		{10, "10. What is the year of the most updated entry in the list?", LatestModifiedYear},
		{11, "11. What is the title of the second published book for the author with the highest number of different titles in the list?", SecondBookOfTopAuthor},
		{12, "12. What is the pair of (publisher, author) with the highest number of books published?", TopPublisherAuthor},
	}
}
