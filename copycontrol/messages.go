package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/marcodamonte/primer/internal/message"
)

func folderNames(m *message.Message) string {
	var names []string
	for _, f := range m.Folders() {
		names = append(names, f.Name)
	}
	return "[" + strings.Join(names, " ") + "]"
}

func demoMessages() {
	cfg := message.Config{Logger: log.New(os.Stdout, "  ", 0)}
	f1, f2 := message.NewFolder("inbox"), message.NewFolder("archive")

	msg1 := message.NewWithConfig(cfg, "Hello World!")
	msg1.Save(f1)
	msg2 := msg1.Clone()
	msg2.Save(f2)
	msg1.Remove(f1)
	fmt.Printf("  msg1 in %s, msg2 in %s\n", folderNames(msg1), folderNames(msg2))
	fmt.Printf("  inbox=%d archive=%d\n", f1.Len(), f2.Len())

	msg3 := msg2.Take()
	fmt.Printf("  after Take: msg2=%q in %s, msg3=%q in %s\n",
		msg2.Contents(), folderNames(msg2), msg3.Contents(), folderNames(msg3))

	message.Swap(msg1, msg3)
	fmt.Printf("  after Swap: msg1 in %s, msg3 in %s\n", folderNames(msg1), folderNames(msg3))

	for _, m := range []*message.Message{msg1, msg2, msg3} {
		m.Destroy()
	}
	fmt.Printf("  destroyed all: inbox=%d archive=%d\n", f1.Len(), f2.Len())
}
