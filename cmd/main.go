package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SystemBuilders/ChainList/internal/dlist"
	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/SystemBuilders/ChainList/internal/node"
	"github.com/rs/zerolog"
)

func main() {
	serve := flag.Bool("serve", false, "run the list service instead of the demo")
	ip := flag.String("ip", "127.0.0.1", "address the list service listens on")
	port := flag.String("port", "61111", "port the list service listens on")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.GlobalLevel())

	if !*serve {
		demo(log)
		return
	}

	ls := listservice.NewSimpleListService(log)
	scfg := listservice.NewSimpleConfig(*ip, *port)
	if err := node.Start(ls, *scfg, log); err != nil {
		log.Fatal().Err(err).Msg("list service stopped")
	}
}

func demo(log zerolog.Logger) {
	theList := dlist.NewDoublyLinkedListOf(1, 2, 3, 4, 5, 6)

	removed, err := theList.PopAt(2)
	if err != nil {
		log.Fatal().Err(err).Msg("pop at")
	}
	log.Debug().Int("removed", removed).Msg("popped index 2")

	if err := theList.PushAt(2, 56); err != nil {
		log.Fatal().Err(err).Msg("push at")
	}

	for i := 0; i < theList.Size(); i++ {
		v, err := theList.ElementAt(i)
		if err != nil {
			log.Fatal().Err(err).Int("index", i).Msg("element at")
		}
		fmt.Println(v)
	}
}
