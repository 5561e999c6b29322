package handler

import (
	"net/http"

	"github.com/tealiumiq/webformtags/clientscript"
)

const clientScriptFileName = clientscript.FileName

func getClientScript(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	writer.Write(clientscript.Script()) //nolint
}
