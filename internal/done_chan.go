package internal

// DoneChan is closed once to signal completion of a background task.
type DoneChan chan struct{}

// DoneFunc begins an asynchronous stop and returns a channel that
// closes when the stop completes.
type DoneFunc func() DoneChan
