/*
Package server implements msgpack IPC for guess ranking services.

The server reads binary msgpack requests from stdin and writes responses to
stdout, one message per request, processed synchronously. Each request
carries an ID the client uses to correlate the response.

A rank request asks for the best guesses, optionally restricted to a prefix:

	{"id": "req_001", "p": "cr", "l": 10}

The response lists words with their sum-of-squares scores, ascending
(lower splits the remaining solutions more evenly):

	{"id": "req_001", "r": [{"w": "crane", "s": 4}, {"w": "crate", "s": 6}], "c": 2, "t": 1450}

The `t` field is the processing time in microseconds. Errors come back as:

	{"id": "req_001", "e": "no candidates match prefix", "c": 404}
*/
package server

// RankRequest - single ranking request
type RankRequest struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// RankedWord - one word/score pair in a response
type RankedWord struct {
	Word  string `msgpack:"w"`
	Score int64  `msgpack:"s"`
}

// RankResponse - ranking response, results ascending by score
type RankResponse struct {
	ID        string       `msgpack:"id"`
	Results   []RankedWord `msgpack:"r"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// RankError holds basic error information for failed requests
type RankError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
