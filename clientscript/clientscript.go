// Package clientscript contains browser side trigger of ajax submitted webforms.
package clientscript

import (
	_ "embed"

	"github.com/tealiumiq/webformtags"
)

const (
	// LibraryName is the name forms attach the script under
	LibraryName = "webformtags/ajax"
	// CallbackName is the browser function receiving tags of submitted form
	CallbackName = "webformTagsAjaxSubmit"
	// FileName is the name the script is served under
	FileName = "webformtags_ajax.js"

	invokeCommand = "invoke"
)

//go:embed webformtags_ajax.js
var script []byte

// Script returns the browser library source
func Script() []byte {
	return script
}

// Command is an instruction for the browser library
type Command struct {
	Command string        `json:"command"`
	Method  string        `json:"method"`
	Args    []interface{} `json:"args"`
}

// AjaxCommand builds command calling CallbackName with the property set as is
func AjaxCommand(properties webformtags.PropertySet) Command {
	if properties == nil {
		properties = webformtags.PropertySet{}
	}
	return Command{
		Command: invokeCommand,
		Method:  CallbackName,
		Args:    []interface{}{properties},
	}
}
