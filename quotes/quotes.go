package quotes

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Timeout for HTTP requests
const requestTimeout = 20 * time.Second

// Built-in quotes, always available even when no remote feed is configured
var builtinQuotes = []string{
	"The only way to do great work is to love what you do. — Steve Jobs",
	"Don't watch the clock; do what it does. Keep going. — Sam Levenson",
	"Believe you can and you're halfway there. — Theodore Roosevelt",
	"Start where you are. Use what you have. Do what you can. — Arthur Ashe",
	"Do something today that your future self will thank you for.",
	"Small progress is still progress. Keep going.",
	"Difficult roads often lead to beautiful destinations.",
	"You are capable of amazing things.",
	"Mistakes are proof that you are trying.",
	"Focus on progress, not perfection.",
}

// Quotes is an object that manages the pool of motivational quotes
type Quotes struct {
	ctx       context.Context
	log       *log.Logger
	semaphore chan int
	waiting   chan int
	client    *http.Client

	lock   sync.Mutex
	rnd    *rand.Rand
	remote []string

	// Conditional request headers for the remote feed
	lastModified time.Time
	etag         string
}

// Init the object
func (q *Quotes) Init(ctx context.Context) (err error) {
	q.ctx = ctx

	// Init the logger
	q.log = log.New(os.Stdout, "quotes: ", log.Ldate|log.Ltime|log.LUTC)

	// Init the refresh semaphore and waiting channels
	q.semaphore = make(chan int, 1)
	q.waiting = make(chan int, 1)

	// Init the HTTP client
	q.client = &http.Client{
		Timeout: requestTimeout,
	}

	q.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))

	return nil
}

// Random returns a random quote from the pool
func (q *Quotes) Random() string {
	q.lock.Lock()
	defer q.lock.Unlock()

	i := q.rnd.Intn(len(builtinQuotes) + len(q.remote))
	if i < len(builtinQuotes) {
		return builtinQuotes[i]
	}
	return q.remote[i-len(builtinQuotes)]
}

// QueueRefresh queues a refresh of the remote quotes feed
func (q *Quotes) QueueRefresh() {
	// The channel has a capacity of 1, which means that there can only be 1 running and one queued
	// This is so we don't have refreshes running in parallel, nor a situation in which refreshes are queued faster than they are completed
	select {
	// If there's already one request waiting, then return right away
	case q.waiting <- 1:
		break
	default:
		return
	}

	// Acquire the lock now (wait till we can) and then release the waiting lock
	q.semaphore <- 1
	<-q.waiting

	// Refresh the quotes in background
	// This is so the QueueRefresh method can return
	go func() {
		err := q.refreshRemote()
		if err != nil {
			q.log.Println("Error while refreshing the quotes feed", err)
		}

		// Release the lock
		<-q.semaphore
	}()
}

// Fetches the remote feed and replaces the remote quotes on success
func (q *Quotes) refreshRemote() error {
	list, err := q.RequestFeed()
	if err != nil {
		return err
	}

	// An empty list means no feed configured, or the feed was not modified
	if len(list) == 0 {
		return nil
	}

	q.lock.Lock()
	q.remote = list
	q.lock.Unlock()

	q.log.Printf("Loaded %d quotes from the remote feed\n", len(list))

	return nil
}

var collapseSpaces = regexp.MustCompile(`\s+`)

// CleanQuote normalizes a quote coming from the remote feed
func CleanQuote(s string) string {
	// Normalize Unicode sequences, then collapse all whitespace runs
	s = norm.NFKC.String(s)
	s = collapseSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
