package projection

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/digitalax/dlx-indexer/internal/domain"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/store/schema"
)

func (p *Projector) handleTransfer(ctx context.Context, event *domain.Event) error {
	switch event.TransferKind() {
	case domain.TransferKindMint:
		return p.handleMint(ctx, event)
	case domain.TransferKindBurn:
		return p.handleBurn(ctx, event)
	default:
		return p.handleOwnerTransfer(ctx, event)
	}
}

// handleMint creates the garment, pulls its metadata, and registers it
// with the recipient's collector record.
func (p *Projector) handleMint(ctx context.Context, event *domain.Event) error {
	owner := domain.NormalizeAddress(*event.ToAddress)

	garment := &schema.Garment{
		TokenID:          event.TokenID,
		Owner:            &owner,
		PrimarySalePrice: "0",
	}
	attributes := p.resolveMetadata(ctx, event.ContractAddress, garment)

	if err := p.store.SaveGarment(ctx, garment); err != nil {
		return fmt.Errorf("failed to save minted garment %s: %w", event.TokenID, err)
	}
	if err := p.store.ReplaceGarmentAttributes(ctx, event.TokenID, attributes); err != nil {
		return fmt.Errorf("failed to save garment attributes %s: %w", event.TokenID, err)
	}

	return p.addToCollector(ctx, owner, event.TokenID)
}

// handleBurn hard-deletes the garment with its attribute rows and pulls
// the token id out of the owner's collector list.
func (p *Projector) handleBurn(ctx context.Context, event *domain.Event) error {
	garment, err := p.store.GetGarment(ctx, event.TokenID)
	if err != nil {
		return fmt.Errorf("failed to load garment %s: %w", event.TokenID, err)
	}

	owner := domain.NormalizeAddress(*event.FromAddress)
	if garment != nil && garment.Owner != nil {
		owner = *garment.Owner
	}
	if err := p.removeFromCollector(ctx, owner, event.TokenID); err != nil {
		return err
	}

	if err := p.store.DeleteGarment(ctx, event.TokenID); err != nil {
		return fmt.Errorf("failed to delete burned garment %s: %w", event.TokenID, err)
	}
	return nil
}

// handleOwnerTransfer swaps the garment's owner and moves the token id
// between the two collector lists within this one invocation.
func (p *Projector) handleOwnerTransfer(ctx context.Context, event *domain.Event) error {
	from := domain.NormalizeAddress(*event.FromAddress)
	to := domain.NormalizeAddress(*event.ToAddress)

	garment, err := p.store.GetGarment(ctx, event.TokenID)
	if err != nil {
		return fmt.Errorf("failed to load garment %s: %w", event.TokenID, err)
	}
	if garment == nil {
		// transfer of a token minted before indexing began
		logger.WarnCtx(ctx, "transfer for unknown garment, creating it",
			zap.String("token_id", event.TokenID))
		garment = &schema.Garment{
			TokenID:          event.TokenID,
			PrimarySalePrice: "0",
		}
		attributes := p.resolveMetadata(ctx, event.ContractAddress, garment)
		if err := p.store.SaveGarment(ctx, garment); err != nil {
			return fmt.Errorf("failed to save garment %s: %w", event.TokenID, err)
		}
		if err := p.store.ReplaceGarmentAttributes(ctx, event.TokenID, attributes); err != nil {
			return fmt.Errorf("failed to save garment attributes %s: %w", event.TokenID, err)
		}
	}

	garment.Owner = &to
	if err := p.store.SaveGarment(ctx, garment); err != nil {
		return fmt.Errorf("failed to save garment %s: %w", event.TokenID, err)
	}

	if err := p.removeFromCollector(ctx, from, event.TokenID); err != nil {
		return err
	}
	return p.addToCollector(ctx, to, event.TokenID)
}

// handlePrimarySalePriceSet sets the sale price, creating the garment
// lazily when the price event arrives before the mint was indexed.
func (p *Projector) handlePrimarySalePriceSet(ctx context.Context, event *domain.Event) error {
	garment, err := p.store.GetGarment(ctx, event.TokenID)
	if err != nil {
		return fmt.Errorf("failed to load garment %s: %w", event.TokenID, err)
	}
	if garment == nil {
		garment = &schema.Garment{
			TokenID:          event.TokenID,
			PrimarySalePrice: "0",
		}
		attributes := p.resolveMetadata(ctx, event.ContractAddress, garment)
		// attribute rows reference the garment, so it must exist first
		if err := p.store.SaveGarment(ctx, garment); err != nil {
			return fmt.Errorf("failed to save garment %s: %w", event.TokenID, err)
		}
		if err := p.store.ReplaceGarmentAttributes(ctx, event.TokenID, attributes); err != nil {
			return fmt.Errorf("failed to save garment attributes %s: %w", event.TokenID, err)
		}
	}

	garment.PrimarySalePrice = event.Amount
	if err := p.store.SaveGarment(ctx, garment); err != nil {
		return fmt.Errorf("failed to save garment %s: %w", event.TokenID, err)
	}
	return nil
}

// resolveMetadata reads the token URI from the contract and parses the
// document behind it onto the garment. Every step soft-fails: the
// garment keeps empty defaults when the chain call or fetch fails.
func (p *Projector) resolveMetadata(ctx context.Context, contract string, garment *schema.Garment) []schema.GarmentAttribute {
	uri, ok := p.caller.TryTokenURI(ctx, contract, garment.TokenID)
	if !ok {
		return nil
	}
	garment.TokenURI = uri

	doc, ok := p.fetcher.Fetch(ctx, uri)
	if !ok {
		return nil
	}

	garment.Name = doc.Name
	garment.Description = doc.Description
	garment.ImageURL = doc.Image
	garment.AnimationURL = doc.AnimationURL
	garment.RawMetadata = datatypes.JSON(doc.Raw)
	garment.MetadataHash = doc.Hash

	attributes := make([]schema.GarmentAttribute, 0, len(doc.Attributes))
	for i, attr := range doc.Attributes {
		if attr.TraitType == "Designer" {
			garment.Designer = string(attr.Value)
		}
		attributes = append(attributes, schema.GarmentAttribute{
			ID:        domain.AttributeID(garment.TokenID, i),
			TokenID:   garment.TokenID,
			TraitType: attr.TraitType,
			Value:     string(attr.Value),
		})
	}
	return attributes
}

func (p *Projector) addToCollector(ctx context.Context, address, tokenID string) error {
	collector, err := p.store.GetOrCreateCollector(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to load collector %s: %w", address, err)
	}
	collector.Garments = appendUnique(collector.Garments, tokenID)
	if err := p.store.SaveCollector(ctx, collector); err != nil {
		return fmt.Errorf("failed to save collector %s: %w", address, err)
	}
	return nil
}

func (p *Projector) removeFromCollector(ctx context.Context, address, tokenID string) error {
	collector, err := p.store.GetCollector(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to load collector %s: %w", address, err)
	}
	if collector == nil {
		return nil
	}
	collector.Garments = removeString(collector.Garments, tokenID)
	if err := p.store.SaveCollector(ctx, collector); err != nil {
		return fmt.Errorf("failed to save collector %s: %w", address, err)
	}
	return nil
}
