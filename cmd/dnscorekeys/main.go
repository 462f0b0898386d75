// Command dnscorekeys generates DNSSEC signing keys and the records needed
// to publish them: the DNSKEY itself and, for key-signing keys, the DS
// record a parent zone would carry.
package main

import (
	"crypto/rand"
	"flag"
	"log"
	"os"

	"github.com/KarpelesLab/rndstr"
	"github.com/dnscore/dnscore/dnsmsg"
	"github.com/dnscore/dnscore/dnssec"
	"github.com/google/uuid"
)

func main() {
	var (
		owner     = flag.String("zone", "", "owner name of the key (required)")
		algName   = flag.String("algorithm", "ECDSAP256SHA256", "signing algorithm mnemonic")
		bits      = flag.Int("bits", 0, "key size in bits (RSA only; 0 picks the default for the key role)")
		ksk       = flag.Bool("ksk", false, "generate a key-signing key (sets the SEP flag)")
		digestStr = flag.String("digest", "SHA-256", "digest algorithm for the DS record (KSK only)")
	)
	flag.Parse()

	if *owner == "" {
		log.Printf("[dnscorekeys] -zone is required")
		os.Exit(1)
	}

	alg, ok := dnsmsg.StringToAlgorithm[*algName]
	if !ok {
		log.Printf("[dnscorekeys] unknown algorithm %q", *algName)
		os.Exit(1)
	}

	var key *dnsmsg.RDataDNSKEY
	var err error
	if *ksk {
		key, _, err = dnssec.GenerateKSK(alg, *bits)
	} else {
		key, _, err = dnssec.GenerateKey(alg, *bits)
	}
	if err != nil {
		log.Printf("[dnscorekeys] key generation failed: %s", err)
		os.Exit(1)
	}

	// id is a bookkeeping handle for this key, not part of the DNS wire
	// format; it lets operators track a key across rollovers.
	id, err := uuid.NewRandom()
	if err != nil {
		log.Printf("[dnscorekeys] failed to allocate key id: %s", err)
		os.Exit(1)
	}

	token, err := rndstr.SimpleReader(20, rndstr.Alnum, rand.Reader)
	if err != nil {
		log.Printf("[dnscorekeys] failed to generate management token: %s", err)
		os.Exit(1)
	}

	tag := dnssec.KeyTag(key)
	log.Printf("[dnscorekeys] generated key id=%s tag=%d zone=%s ksk=%v", id, tag, *owner, *ksk)
	log.Printf("[dnscorekeys] management token: %s", token)

	printRecord(*owner, dnsmsg.DNSKEY, key)

	if *ksk {
		digest, ok := dnsmsg.StringToDigestType[*digestStr]
		if !ok {
			log.Printf("[dnscorekeys] unknown digest type %q", *digestStr)
			os.Exit(1)
		}
		ds, err := dnssec.ComputeDS(*owner, key, digest)
		if err != nil {
			log.Printf("[dnscorekeys] DS computation failed: %s", err)
			os.Exit(1)
		}
		printRecord(*owner, dnsmsg.DS, ds)
	}
}

func printRecord(owner string, t dnsmsg.Type, rdata dnsmsg.RData) {
	log.Printf("%s 0 IN %s %s", owner, t, rdata)
}
