package inet

func init() {
	assertionsEnabled = true
}
