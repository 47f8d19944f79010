package i18n

import "marhaba/store"

var translations = map[store.Language]map[string]string{
	store.LanguageEN: {
		"marhaba":            "Marhaba",
		"desertTourism":      "Desert Tourism",
		"tour":               "Tour",
		"hotel":              "Hotel",
		"guesthouse":         "Guesthouse",
		"bookingReceipt":     "Booking Receipt",
		"customer":           "Customer",
		"bookingDetails":     "Booking Details",
		"offer":              "Offer",
		"date":               "Date",
		"guests":             "Guests",
		"summary":            "Summary",
		"total":              "Total",
		"status":             "Status",
		"pending":            "Pending",
		"confirmed":          "Confirmed",
		"rejected":           "Rejected",
		"cancelled":          "Cancelled",
		"offerUnavailable":   "Offer no longer available",
		"bookingNotFound":    "Booking not found.",
		"receiptError":       "Error loading receipt details.",
		"chatWelcome":        "Marhaba! I am your desert guide. How can I help you plan your trip to the Sahara?",
		"chatError":          "Sorry, I am having trouble connecting right now. Please try again later.",
		"userNotFound":       "User not found!",
		"paymentSuccess":     "Payment Successful! Your booking is confirmed.",
		"questionSent":       "Your question has been sent!",
		"offerAdded":         "Offer added successfully!",
		"pdfSimulated":       "PDF generation is simulated. In a real app, this would download a PDF file.",
		"pdfContentNotFound": "Could not generate PDF: content not found.",
		"standardPolicy":     "Standard policy",
		"perNight":           "per night",
		"perPerson":          "per person",
		"reviews":            "reviews",
	},
	store.LanguageAR: {
		"marhaba":            "مرحبا",
		"desertTourism":      "السياحة الصحراوية",
		"tour":               "رحلة",
		"hotel":              "فندق",
		"guesthouse":         "دار ضيافة",
		"bookingReceipt":     "إيصال الحجز",
		"customer":           "العميل",
		"bookingDetails":     "تفاصيل الحجز",
		"offer":              "العرض",
		"date":               "التاريخ",
		"guests":             "الضيوف",
		"summary":            "الملخص",
		"total":              "المجموع",
		"status":             "الحالة",
		"pending":            "قيد الانتظار",
		"confirmed":          "مؤكد",
		"rejected":           "مرفوض",
		"cancelled":          "ملغى",
		"offerUnavailable":   "العرض لم يعد متاحًا",
		"bookingNotFound":    "الحجز غير موجود.",
		"receiptError":       "خطأ في تحميل تفاصيل الإيصال.",
		"chatWelcome":        "مرحبا! أنا دليلك في الصحراء. كيف يمكنني مساعدتك في التخطيط لرحلتك إلى الصحراء الكبرى؟",
		"chatError":          "عذرًا، أواجه مشكلة في الاتصال حاليًا. يرجى المحاولة لاحقًا.",
		"userNotFound":       "المستخدم غير موجود!",
		"paymentSuccess":     "تم الدفع بنجاح! تم تأكيد حجزك.",
		"questionSent":       "تم إرسال سؤالك!",
		"offerAdded":         "تمت إضافة العرض بنجاح!",
		"pdfSimulated":       "إنشاء ملف PDF محاكى. في تطبيق حقيقي، سيتم تنزيل ملف PDF.",
		"pdfContentNotFound": "تعذر إنشاء ملف PDF: المحتوى غير موجود.",
		"standardPolicy":     "سياسة قياسية",
		"perNight":           "لليلة",
		"perPerson":          "للشخص",
		"reviews":            "تقييمات",
	},
}
