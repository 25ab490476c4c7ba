// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc provides the OpenSoundControl message codec, a typed argument
//encoder, and a small UDP client and server.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (int32)
//	'h' (int64)
//	'f' (float32)
//	'd' (float64)
//	's' (string)
//	'b' ([]byte)
//	'c' (Char)
//	'm' (MIDIMessage)
//	'T' (true)
//	'F' (false)
//
//- A closed set of Argument shapes (scalars, vectors, colors, blobs, MIDI,
//float lists) that Encode maps onto those tags.
//
//Bundles and address pattern matching are not supported.
//
//Usage
//
//OSC client example:
//  client, _ := osc.Dial("localhost:8765")
//  tags, args, err := osc.Encode(osc.Vector3{X: 1, Y: 2, Z: 3})
//  if err == nil && len(tags) > 0 {
//      client.SendTagged("/osc/address", osc.JoinTypeTags(tags), args)
//  }
//
//OSC server example:
//  server := &osc.Server{
//      Addr: "127.0.0.1:8765",
//      Handler: func(msg *osc.Message, _ net.Addr) {
//          fmt.Println(msg)
//      },
//  }
//  server.ListenAndServe()
package osc
