package tui

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// TerminalImageProtocol represents the image protocol supported by the terminal
type TerminalImageProtocol int

// Terminal image protocol types
const (
	ProtocolNone TerminalImageProtocol = iota
	ProtocolKitty
	ProtocolITerm2
)

// DetectImageProtocol detects which terminal image protocol is supported.
func DetectImageProtocol() TerminalImageProtocol {
	termProgram := os.Getenv("TERM_PROGRAM")

	switch {
	case strings.Contains(os.Getenv("TERM"), "kitty"), termProgram == "ghostty":
		return ProtocolKitty
	case termProgram == "iTerm.app":
		return ProtocolITerm2
	}
	return ProtocolNone
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// LocalCoverPath returns the filesystem path of a cover image, or "" when
// the image is remote. Remote covers are never fetched.
func LocalCoverPath(image string) string {
	switch {
	case image == "":
		return ""
	case strings.HasPrefix(image, "http://"), strings.HasPrefix(image, "https://"):
		return ""
	case strings.HasPrefix(image, "file://"):
		return strings.TrimPrefix(image, "file://")
	}
	return image
}

// RenderCover returns the escape sequence that draws a local cover inline,
// or "" if the image is remote or unreadable, the terminal has no image
// protocol, or the protocol cannot draw the image format.
func RenderCover(image string, protocol TerminalImageProtocol) string {
	path := LocalCoverPath(image)
	if path == "" || protocol == ProtocolNone {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	switch protocol {
	case ProtocolKitty:
		// f=100 accepts PNG only; other formats fall back to the URL line.
		if !bytes.HasPrefix(data, pngMagic) {
			return ""
		}
		// a=T transmit and display
		return fmt.Sprintf("\x1b_Ga=T,f=100,t=d;%s\x1b\\", encoded)
	case ProtocolITerm2:
		return fmt.Sprintf("\x1b]1337;File=inline=1;width=24:%s\x07", encoded)
	}
	return ""
}
