/*
Package cards provides the card service: advisory number checks and the
linking of customer cards to a processor token.

Usage:

	svc := cards.NewService(repo, cacheService, tokenizer, cards.Config{
	    FingerprintKey: cfg.Cards.FingerprintKey,
	    DateFormat:     cfg.Cards.DateFormat,
	    BatchMaxSize:   cfg.Cards.BatchMaxSize,
	    BatchWorkers:   cfg.Cards.BatchWorkers,
	}, logger)

	// Pre-validate a number typed into a form
	result := svc.Check("4388 5430 4947 5174")

	// Link a card for a user
	card, err := svc.LinkCard(ctx, userID, cards.CreateCardInput{...})

Checks:

Check and CheckBatch never fail on malformed numbers; they report
valid=false and a card type of Unknown (or None for empty input). They are a
filter in front of the processor, not a replacement for it.

Linking:

LinkCard validates the input, refuses a card the user already linked
(compared by keyed fingerprint), tokenizes the number and stores only the
token, fingerprint, network and last four digits. The first linked card
becomes the default; deleting the default promotes the oldest remaining card.

Cache Management:

A user's card list is cached under card:user:<id> and invalidated on every
write. Cache failures are logged and never fail a request.

Error Handling:

Validation failures are returned as *ValidationError carrying per-field
messages. Other failures wrap the domain errors in internal/errors
(ErrDuplicateCard, ErrCardNotFound, ErrCardNotOwned, ErrBatchTooLarge).
*/
package cards
