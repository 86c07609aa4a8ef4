package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FileJournal appends tree operations to a JSON lines file, one event per
// line.
type FileJournal struct {
	events  chan<- Event
	errors  <-chan error
	lastSeq uint64
	file    *os.File
	done    <-chan struct{}
	wg      sync.WaitGroup
}

func (l *FileJournal) WriteDelete(key int) {
	l.write(Event{Type: EventDelete, Key: key})
}

func (l *FileJournal) WriteInsert(key int) {
	l.write(Event{Type: EventInsert, Key: key})
}

// write drops the event once the writer goroutine has stopped.
func (l *FileJournal) write(event Event) {
	select {
	case l.events <- event:
	case <-l.done:
		log.WithField("type", event.Type).Warn("journal writer stopped, dropping event")
	}
}

func (l *FileJournal) Err() <-chan error {
	return l.errors
}

func (l *FileJournal) writeEvent(event Event) error {
	event.Sequence = l.lastSeq

	eventJson, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = l.file.Write(append(eventJson, '\n'))
	if err != nil {
		return err
	}
	return l.file.Sync()
}

func (l *FileJournal) ReadEvents() (<-chan Event, <-chan error) {
	scanner := bufio.NewScanner(l.file)
	eventChan := make(chan Event)
	errorChan := make(chan error)

	go func() {
		defer close(eventChan)
		defer close(errorChan)

		var event Event
		for scanner.Scan() {
			eventStr := scanner.Text()
			if strings.TrimSpace(eventStr) == "" {
				continue
			}

			err := json.NewDecoder(strings.NewReader(eventStr)).Decode(&event)
			if err != nil {
				errorChan <- errors.Wrap(err, "error parsing journal entry")
				return
			}

			if l.lastSeq >= event.Sequence {
				errorChan <- errors.Errorf("journal sequence out of order: %d after %d", event.Sequence, l.lastSeq)
				return
			}

			l.lastSeq = event.Sequence
			eventChan <- event
		}

		if err := scanner.Err(); err != nil {
			errorChan <- errors.Wrap(err, "error reading journal")
		}
	}()
	return eventChan, errorChan
}

// Run starts the writer goroutine. Events written before Run block. The
// channel returned by Err is closed when the writer stops.
func (l *FileJournal) Run() {
	events := make(chan Event, 16)
	l.events = events

	errs := make(chan error, 1)
	l.errors = errs

	done := make(chan struct{})
	l.done = done

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer close(done)
		defer close(errs)

		for event := range events {
			l.lastSeq++

			err := l.writeEvent(event)
			if err != nil {
				log.WithError(err).WithField("seq", l.lastSeq).Error("failed to write journal event")
				errs <- err
				return
			}
		}
	}()
}

// Close flushes pending events and closes the file.
func (l *FileJournal) Close() error {
	if l.events != nil {
		close(l.events)
		l.wg.Wait()
		l.events = nil
	}
	return l.file.Close()
}

func NewFileJournal(filename string) (*FileJournal, error) {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open journal file")
	}
	return &FileJournal{file: file}, nil
}
