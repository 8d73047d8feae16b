package lisaobj

// PascalStringAt materializes the length-prefixed string stored at the
// given absolute offset within the object file's image: one length byte L
// followed by L character bytes.
//
// Lisa Workshop object readers historically did not bounds-check
// this read; this version does, returning ErrMalformed instead of reading
// past the end of the image.
func (of *ObjectFile) PascalStringAt(offset int64) (string, error) {
	if offset < 0 || offset >= int64(len(of.image)) {
		return "", malformedAt(offset, "Pascal string offset out of range", nil)
	}
	l := int64(of.image[offset])
	if offset+1+l > int64(len(of.image)) {
		return "", malformedAt(offset, "Pascal string runs past end of file", l)
	}
	return string(of.image[offset+1 : offset+1+l]), nil
}
