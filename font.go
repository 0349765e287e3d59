package main

const ( // empirically determined for courier
	sizeToHeight  = 0.72
	widthToHeight = 0.82
)

func GetFontHeight(fontSize float64) (height float64) {
	return fontSize * sizeToHeight
}

func GetCourierFontWidthFromHeight(height float64) float64 {
	return widthToHeight * height
}

func GetCourierFontWidth(fontSize float64) float64 {
	return GetCourierFontWidthFromHeight(GetFontHeight(fontSize))
}
