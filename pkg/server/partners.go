package server

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server/api"
)

const (
	msgPartnersFailed      = "Kunde inte hämta partners"
	msgEmailMissing        = "E-post krävs"
	msgSelfInvite          = "Du kan inte bjuda in dig själv"
	msgAlreadyInvited      = "Denna person är redan inbjuden"
	msgInviteFailed        = "Kunde inte skapa inbjudan"
	msgPartnerAdded        = "Partner tillagd! Ni delar nu vinkällare."
	msgInviteSent          = "Inbjudan skickad! Partnern kopplas när de loggar in."
	msgPartnerIDMissing    = "Partner ID krävs"
	msgPartnerDeleteFailed = "Kunde inte ta bort partner"
	msgPartnerNotFound     = "Partnern hittades inte"
	msgLinkFailed          = "Kunde inte länka partners"
	msgNoPendingInvites    = "Inga väntande inbjudningar"
	msgPartnersLinked      = "%d partner(s) kopplades"
)

type PartnerServer struct {
	partnerRepository repository.PartnerRepository
	userRepository    repository.UserRepository
	logger            *zap.Logger
}

func NewPartnerServer(partnerRepo repository.PartnerRepository, userRepo repository.UserRepository, logger *zap.Logger) *PartnerServer {
	return &PartnerServer{partnerRepository: partnerRepo, userRepository: userRepo, logger: logger}
}

// GetPartners returns accepted links in both directions and invites waiting for the caller.
func (p *PartnerServer) GetPartners(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	partners, err := p.partnerRepository.GetAcceptedPartnerLinks(r.Context(), user.UUID)
	if err != nil {
		p.logger.Error("error getting partners", zap.Stringer("user", user.UUID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgPartnersFailed)

		return
	}

	pending, err := p.partnerRepository.GetPendingInvitesForEmail(r.Context(), user.Email)
	if err != nil {
		p.logger.Warn("error getting pending invites", zap.String("email", user.Email), zap.Error(err))

		pending = nil
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"partners":       api.PartnerLinksFromModel(partners),
		"pendingInvites": api.PartnerLinksFromModel(pending),
	})
}

// Invite links the caller to an email. Known users are accepted right away.
func (p *PartnerServer) Invite(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.InviteRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(p.logger, r, err)
		writeError(w, http.StatusBadRequest, msgEmailMissing)

		return
	}

	email := model.NormalizeEmail(request.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, msgEmailMissing)

		return
	}

	if email == model.NormalizeEmail(user.Email) {
		writeError(w, http.StatusBadRequest, msgSelfInvite)

		return
	}

	_, err := p.partnerRepository.FindInvite(r.Context(), user.UUID, email)
	if err == nil {
		writeError(w, http.StatusBadRequest, msgAlreadyInvited)

		return
	}

	if !errors.Is(err, repository.ErrPartnerNotFound) {
		p.logger.Error("error checking existing invite", zap.String("email", email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInviteFailed)

		return
	}

	link := model.PartnerLink{UserID: user.UUID, PartnerEmail: email, Status: model.PartnerPending}

	partner, err := p.userRepository.GetUserFromEmail(r.Context(), email)

	switch {
	case err == nil:
		link.PartnerUserID = &partner.UUID
		link.Status = model.PartnerAccepted
	case !errors.Is(err, repository.ErrUserNotFound):
		p.logger.Warn("error looking up invited user, storing pending invite", zap.String("email", email), zap.Error(err))
	}

	invite, err := p.partnerRepository.AddPartnerLink(r.Context(), link)
	if err != nil {
		p.logger.Error("error creating invite", zap.String("email", email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInviteFailed)

		return
	}

	message := msgInviteSent
	if invite.Status == model.PartnerAccepted {
		message = msgPartnerAdded
	}

	writeJSON(w, http.StatusOK, map[string]any{"invite": api.PartnerLinkFromModel(invite), "message": message})
}

// DeletePartner removes a link the caller created.
func (p *PartnerServer) DeletePartner(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var request api.DeletePartnerRequest
	if err := decodeRequest(w, r, &request); err != nil {
		logValidation(p.logger, r, err)
		writeError(w, http.StatusBadRequest, msgPartnerIDMissing)

		return
	}

	if err := p.partnerRepository.DeletePartnerLink(r.Context(), user.UUID, request.PartnerID); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			writeError(w, http.StatusNotFound, msgPartnerNotFound)

			return
		}

		p.logger.Error("error deleting partner", zap.Uint("id", request.PartnerID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgPartnerDeleteFailed)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// LinkPartners accepts every pending invite addressed to the caller's email.
func (p *PartnerServer) LinkPartners(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	linked, err := p.partnerRepository.LinkPendingInvites(r.Context(), user.Email, user.UUID)
	if err != nil {
		p.logger.Error("error linking partners", zap.String("email", user.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgLinkFailed)

		return
	}

	message := msgNoPendingInvites
	if len(linked) > 0 {
		message = fmt.Sprintf(msgPartnersLinked, len(linked))
	}

	writeJSON(w, http.StatusOK, map[string]any{"linked": len(linked), "message": message})
}
