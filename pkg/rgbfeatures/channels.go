package rgbfeatures

// ExtractChannelMeans decodes the image at path and returns the mean of its
// blue, green and red channels. Any read or decode failure is a *DecodeError.
func ExtractChannelMeans(path string) (ChannelMeans, error) {
	mat, err := imReadColor(path)
	if err != nil {
		return ChannelMeans{}, &DecodeError{Path: path, Err: err}
	}
	defer mat.Close()
	return meanBGR(mat), nil
}

// ChannelMeansFromBytes is ExtractChannelMeans for an encoded image held in memory.
func ChannelMeansFromBytes(data []byte) (ChannelMeans, error) {
	mat, err := imDecodeColor(data)
	if err != nil {
		return ChannelMeans{}, &DecodeError{Err: err}
	}
	defer mat.Close()
	return meanBGR(mat), nil
}
