package util

func GetAppName() string {
	return "PagePair"
}
