package tailer

import (
	"fmt"
	"io"
	"os"
)

// DefaultWindowLines is the number of trailing lines shown when a follow
// session starts.
const DefaultWindowLines = 150

const scanChunkSize = 8 * 1024

// LocateStart returns the byte offset from which reading forward yields
// at most the last `lines` lines of the file as it stood at open time.
// Files with fewer lines than the window start at offset zero, as do
// empty files.
//
// The scan walks backward from the end of the file in fixed-size chunks
// counting newline bytes, so cost is proportional to the tail actually
// scanned rather than the whole file. A terminator at the very last byte
// ends the final line rather than starting a new one and is not counted.
func LocateStart(file *os.File, lines int) (int64, error) {
	if lines <= 0 {
		lines = DefaultWindowLines
	}

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat log file: %w", err)
	}
	size := info.Size()
	if size == 0 {
		return 0, nil
	}

	found := 0
	position := size
	buf := make([]byte, scanChunkSize)

	for position > 0 && found < lines {
		chunk := int64(len(buf))
		if chunk > position {
			chunk = position
		}
		position -= chunk

		if _, err := file.ReadAt(buf[:chunk], position); err != nil && err != io.EOF {
			return 0, fmt.Errorf("read log file: %w", err)
		}

		for i := chunk - 1; i >= 0; i-- {
			if buf[i] != '\n' {
				continue
			}
			if position+i == size-1 {
				// Trailing terminator of the final line.
				continue
			}
			found++
			if found == lines {
				return position + i + 1, nil
			}
		}
	}

	return 0, nil
}
