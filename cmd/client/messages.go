package main

func getMessages() []string {
	return []string{
		"hello",
		"how are you?",
		"how does going?",
		"okey",
		"stay in touch",
		"nice to meet you",
		"good morning",
		"afternoon!",
		"hi, fellas!",
		"hello, people!",
	}
}
