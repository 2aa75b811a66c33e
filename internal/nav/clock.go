package nav

import "time"

// timeNow is swapped in tests that exercise token-expiry route selection.
var timeNow = time.Now
