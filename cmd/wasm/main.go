//go:build js && wasm

package main

import (
	"syscall/js"

	rf "rgbfeatures/pkg/rgbfeatures"
)

func main() {
	js.Global().Set("extractChannelMeans", js.FuncOf(extractChannelMeans))
	select {} // block forever
}

// extractChannelMeans(fileBytes, fileName, pattern?) returns
// {blue, green, red, label} or {error}. label is null when the pattern does
// not match fileName.
func extractChannelMeans(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("usage: extractChannelMeans(fileBytes, fileName, pattern)")
	}

	jsBytes := args[0]
	length := jsBytes.Get("length").Int()
	fileBytes := make([]byte, length)
	js.CopyBytesToGo(fileBytes, jsBytes)

	fileName := args[1].String()

	pattern := rf.DefaultLabelPattern
	if len(args) >= 3 && args[2].Type() == js.TypeString {
		pattern = args[2].String()
	}
	labels, err := rf.NewLabelExtractor(pattern)
	if err != nil {
		return errorResult(err.Error())
	}

	means, err := rf.ChannelMeansFromBytes(fileBytes)
	if err != nil {
		return errorResult(err.Error())
	}

	var label interface{}
	if l := labels.Extract(fileName); l != nil {
		label = *l
	}

	return js.ValueOf(map[string]interface{}{
		"fileName": fileName,
		"blue":     means.Blue,
		"green":    means.Green,
		"red":      means.Red,
		"label":    label,
	})
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
