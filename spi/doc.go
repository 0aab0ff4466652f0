// SPDX-License-Identifier: EPL-2.0

// Package spi is the provider side of audsys: the registry codec packages
// register into, the interfaces they implement, and the generic machinery
// the facade uses to query and drive them.
//
// # Discovery
//
// Providers are registered into a Registry under a Domain. Discover
// enumerates every registered provider implementing a given interface and
// returns a fresh slice on every call:
//
//	readers := spi.Discover[spi.FileReader](registry)
//
// # Filtering
//
// Filter narrows a candidate list. Providers that aggregate other providers
// live in DomainFacade and only ever look at DomainCodec candidates, so
// they cannot re-enter themselves:
//
//	codec := spi.Filter(readers, spi.InDomain(spi.DomainCodec))
//
// # Aggregation
//
// Aggregate unions the answers of every candidate without duplicates. Any
// and First return the first positive answer in candidate order.
//
// # Dispatch
//
// Actions return an Outcome: Ok on success, Reject when the provider does
// not handle the input, Fail when the underlying reader or writer broke.
// Dispatch tries candidates in order, skipping rejections and stopping on
// the first success or failure:
//
//	ff, err := spi.DispatchStream(obs, "describe", "audio stream", readers, rs,
//	    func(p spi.FileReader, rs io.ReadSeeker) spi.Outcome[*format.ExtendedFileFormat] {
//	        return p.Describe(rs)
//	    })
//
// When every candidate rejects, the error is an *UnsupportedError and
// errors.Is(err, ErrUnsupported) holds. DispatchStream also rewinds the
// input before each new candidate.
package spi
