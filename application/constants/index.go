package constants

import "time"

// matching thresholds
var AUTH_THRESHOLD float64 = 0.80
var MIN_QUALITY_FOR_ENROLLMENT float64 = 0.60

// a face embedding is the flattened (x, y, z) of every schema key point
var EMBEDDING_LENGTH int = 234

// enrollment abuse guard
var ENROLLMENT_MAX_REQUESTS int = 5
var ENROLLMENT_WINDOW = time.Minute * 1

// agents shorter than this from a resolvable client are treated as scripted
var MIN_CLIENT_AGENT_LENGTH int = 10

var SUSPICIOUS_AGENT_PATTERNS = []string{"bot", "crawler", "spider", "scraper", "curl", "wget"}

// value the resolver falls back to when no client address can be extracted
var UNKNOWN_CLIENT_KEY = "unknown"

var SESSION_TOKEN_VALIDITY = time.Hour * 1
