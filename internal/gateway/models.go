package gateway

import "encoding/json"

// FAQ is one question/answer pair from the FAQ store.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StoreFAQRequest is the body posted to the FAQ store.
type StoreFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StoredFAQAck is whatever object the FAQ store returns after a create.
type StoredFAQAck map[string]any

// Ministry is an opaque record from the content listing; it is passed through untouched.
type Ministry = json.RawMessage

// MaxMinistries caps how many ministries are returned.
const MaxMinistries = 3

// PodcastFeed is the raw RSS body returned by the upstream feed.
type PodcastFeed = string
