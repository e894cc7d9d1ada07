// Package schemes holds the table of "special" URL schemes (the set the
// WHATWG URL living standard singles out for authority-style parsing and
// default-port elision) and looks up each one's default port.
//
// A scheme is special if it is one of ftp, gopher, http, https, ws, wss,
// or file. The parser consults IsSpecial to decide whether a pathish
// segment should be split into a host/port authority or kept opaque, and
// the canonicalizer consults DefaultPort to elide a port that matches the
// scheme's default (http://example.com:80/ and http://example.com/ are
// the same URL).
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/hueristiq/go-ssurt/schemes"
//	)
//
//	func main() {
//	    fmt.Println(schemes.IsSpecial("https"), schemes.DefaultPort("https"))
//	}
package schemes
