package model

import "fmt"

// Activity factories for the event types the system audits. Descriptions keep
// the original user-facing wording.

func UserRegisteredActivity(userName, email string) Activity {
	return Activity{
		Type:        ActivityUserRegistered,
		Description: fmt.Sprintf("Nuevo usuario registrado: %s", userName),
		Metadata:    Metadata{"email": email},
		UserName:    "Sistema",
	}
}

func BookAddedActivity(bookTitle, bookAuthor, actorName string, actorID *int) Activity {
	return Activity{
		Type:        ActivityBookAdded,
		Description: fmt.Sprintf("Libro agregado: %q por %s", bookTitle, bookAuthor),
		Metadata:    Metadata{"bookTitle": bookTitle, "bookAuthor": bookAuthor},
		UserID:      actorID,
		UserName:    actorName,
	}
}

func LoanCreatedActivity(bookTitle, borrowerName, actorName string, actorID *int) Activity {
	return Activity{
		Type:        ActivityLoanCreated,
		Description: fmt.Sprintf("Préstamo realizado: %q a %s", bookTitle, borrowerName),
		Metadata:    Metadata{"bookTitle": bookTitle, "borrowerName": borrowerName},
		UserID:      actorID,
		UserName:    actorName,
	}
}

func LoanReturnedActivity(bookTitle, borrowerName, actorName string, actorID *int) Activity {
	return Activity{
		Type:        ActivityLoanReturned,
		Description: fmt.Sprintf("Libro devuelto: %q por %s", bookTitle, borrowerName),
		Metadata:    Metadata{"bookTitle": bookTitle, "borrowerName": borrowerName},
		UserID:      actorID,
		UserName:    actorName,
	}
}

func AuthorAddedActivity(authorName, actorName string, actorID *int) Activity {
	return Activity{
		Type:        ActivityAuthorAdded,
		Description: fmt.Sprintf("Autor agregado: %s", authorName),
		Metadata:    Metadata{"authorName": authorName},
		UserID:      actorID,
		UserName:    actorName,
	}
}
