package services

import "github.com/Dosada05/league-management/models"

// Авторизация — упорядоченная композиция предикатов: более широкая роль
// проверяется первой и замыкает цепочку. Ниже лиг-админа capability
// необходима, но недостаточна — требуется совпадение username.

// LeagueAdminAuthorized reports whether the caller may read every system
// user's data.
func LeagueAdminAuthorized(caller models.Caller) bool {
	return caller.Role.Can(models.CapViewSystemUsers)
}

// CoachAuthorized reports whether the caller may read the team the given
// coach record belongs to. A team with no coach record fails closed for
// everyone below league admin.
func CoachAuthorized(caller models.Caller, coach *models.Coach) bool {
	if LeagueAdminAuthorized(caller) {
		return true
	}
	if coach == nil || coach.User == nil {
		return false
	}
	return caller.Role.Can(models.CapViewCoaches) && coach.User.Username == caller.Username
}

// PlayerAuthorized reports whether the caller may read the given player's
// data: the team's coach chain, or the player themself.
func PlayerAuthorized(caller models.Caller, coach *models.Coach, player *models.Player) bool {
	if CoachAuthorized(caller, coach) {
		return true
	}
	if player == nil || player.User == nil {
		return false
	}
	return caller.Role.Can(models.CapViewPlayers) && player.User.Username == caller.Username
}
