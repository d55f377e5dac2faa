package cms

// GROQ query catalog. Projections name their fields explicitly so the
// typed models in internal/models describe the full response shape. The
// one exception is inside opaque variant payloads whose element shape is
// author-defined (hero elements); those spread their fields.

// QuerySiteSettings fetches the global settings singleton. Multiple
// records may exist while authors experiment; the most recently updated
// one wins.
const QuerySiteSettings = `*[_type == "siteSettings"] | order(_updatedAt desc)[0] {
  title,
  contactInfo[] { _key, label, value },
  openingTimes[] { title, time },
  facebookUrl,
  linkedinUrl,
  instagramUrl,
  preloaderImages[] { asset->, alt },
  logotype { asset-> { _id, url, mimeType, metadata { dimensions } } },
  footerLogos[] { asset->, alt },
  certificationLogo { asset-> },
  ftCreditLogo { asset-> },
  menuBackgroundImage { asset-> },
  bookingTitle,
  bookingLink,
  disablePreloader,
  disablePageTransition,
  mainNavigationMenu-> {
    _id,
    title,
    items[] {
      _key,
      text,
      to {
        page-> { _id, _type, slug { current }, title },
        section-> { _id, title },
        anchor,
        url
      }
    }
  },
  footerMenu-> {
    _id,
    title,
    items[] {
      _key,
      text,
      to {
        page-> { _id, _type, slug { current }, title },
        section-> { _id, title },
        anchor,
        url
      }
    }
  },
  copyright,
  credits,
  heroLeftText,
  heroRightText,
  defaultHeroVideo { asset-> { _id, url, mimeType, size } },
  defaultHeroImage {
    asset-> { _id, url, mimeType, size, metadata { dimensions { width, height } } },
    alt
  },
  defaultMetaDescription,
  newsletterActionUrl,
  newsletterTitleFooter,
  newsletterTitleHero,
  newsletterPlaceholder,
  cookiesMessage,
  googleAnalyticsId
}`

// QueryMenuByTitle fetches one menu by exact title match
const QueryMenuByTitle = `*[_type == "menu" && title == $menuTitle][0] {
  _id,
  title,
  items[] {
    _key,
    text,
    to {
      page-> { _id, _type, slug { current }, title },
      section-> { _id, title },
      anchor,
      url
    }
  }
}`

// QueryAllPageVideos fetches all pages carrying a hero video, newest first
const QueryAllPageVideos = `*[_type == "page" && defined(heroVideo)] | order(_updatedAt desc) {
  _id,
  slug { current },
  title,
  heroVideo { asset-> { _id, url, mimeType, size } }
}`

// sectionProjection expands every section variant payload. Exactly one of
// these payload fields is populated per section, matching sectionType.
const sectionProjection = `
    _id,
    _type,
    title,
    borderTop,
    borderBottom,
    noPaddingTop,
    noPaddingBottom,
    paddingTopMobile,
    paddingBottomMobile,
    sectionType,
    heroContent {
      image { asset-> { _id, url, metadata { dimensions } } },
      heroElements[] {
        ...,
        image { ..., asset-> }
      }
    },
    basicContent {
      title,
      content,
      pdf { asset-> { _id, url, metadata { dimensions } } }
    },
    imageContent {
      image { asset-> { _id, url, metadata { dimensions } } },
      constrainHeight,
      alignment,
      columns,
      grid
    },
    sectionImagesContent {
      enablePadding,
      items[] {
        image { asset-> { _id, url, metadata { dimensions } } },
        objectFit,
        alignment,
        width
      }
    },
    tipsFromTheTableContent { title },
    reviewsContent {
      backgroundColor,
      textColor,
      items[] { reviewContent, cite, showStars, showQuotes }
    },
    instagramContent {
      sectionImage { asset-> },
      linkText,
      linkUrl,
      items[] { image { asset-> } }
    },
    headlineContent {
      headline,
      centerText,
      centerBlock,
      paddingBottom,
      showArrow,
      button { text, url }
    },
    contactContent {
      content,
      items[] { _key, label, value },
      ftCreditLogo { asset-> { _id, url } },
      decorativeImage { asset-> { _id, url, metadata { dimensions } }, alt }
    },
    homeScrollContent {
      items[] {
        _key,
        title,
        image { asset-> { _id, url, metadata { dimensions } } },
        link { page-> { slug { current } }, url }
      }
    },
    twoColumnContent {
      mainImage { asset-> { _id, url, metadata { dimensions } } },
      overlayImage { asset-> { _id, url, metadata { dimensions } } },
      roundalImage { asset-> { _id, url, metadata { dimensions } } },
      includeLogo,
      logoImage { asset-> { _id, url, metadata { dimensions } } },
      text,
      enableBookingButton,
      imageRight,
      backgroundColor,
      textColor,
      textImage { asset-> { _id, url, metadata { dimensions } } }
    },
    nestedContent {
      mainImage { asset-> { _id, url, metadata { dimensions } } },
      iconImage { asset-> { _id, url, metadata { dimensions } } },
      content,
      backgroundColor,
      textColor
    },
    bannerContent {
      image { asset-> { _id, url, metadata { dimensions } } },
      content
    },
    quoteContent { quote, cite, alignment },
    googleMapContent { latitude, longitude, zoom, mapHeight, googleMapsLink },
    textContent {
      title,
      image { asset-> { _id, url, metadata { dimensions } }, alt },
      content,
      columns,
      offset,
      splitTitle,
      splitTitleLeft,
      splitTitleRight
    },
    marqueeContent { linkTitle, linkUrl, repeatCount, marqueeSpeed, reverse },
    serviceLinksContent {
      enablePaddingTopBottom,
      enablePaddingLeftRight,
      items[] {
        image { asset-> { _id, url, metadata { dimensions } } },
        title,
        linkTitle,
        url,
        targetBlank
      }
    },
    dualCarouselContent {
      leftCarousel[] { _type, asset-> { _id, url, metadata { dimensions } }, alt },
      leftOverlay { asset-> { _id, url, metadata { dimensions } }, alt },
      rightCarousel[] { _type, asset-> { _id, url, metadata { dimensions } }, alt },
      rightOverlay { asset-> { _id, url, metadata { dimensions } }, alt },
      carouselSpeed,
      transitionDuration
    },
    singleCarouselContent {
      carousel[] { _type, asset-> { _id, url, metadata { dimensions } }, alt },
      overlay { asset-> { _id, url, metadata { dimensions } }, alt },
      carouselSpeed,
      transitionDuration,
      enableBookingButton,
      enableFixedBackground,
      enablePaddingTopBottom,
      enablePaddingLeftRight,
      topBackgroundColor,
      bottomBackgroundColor
    },
    uspsContent {
      items[] {
        image { asset-> { _id, url, metadata { dimensions } } },
        title,
        description
      }
    },
    serviceContent {
      service-> {
        _id,
        title,
        description,
        bookingLink,
        subservices[] { title, duration, cost }
      },
      alignment,
      testimonial { quote, cite }
    },
    horizontalCarouselContent {
      items[] {
        _type,
        asset { asset-> { _id, url, metadata { dimensions } } },
        alt,
        poster { asset-> { _id, url, metadata { dimensions } } }
      }
    },
    selectedPagesContent {
      title,
      pages[]-> {
        _id,
        title,
        slug,
        heroVideo { asset-> { _id, url, mimeType, size } }
      }
    },
    selectedServicesContent {
      services[]-> {
        _id,
        title,
        image { asset-> { _id, url, mimeType } },
        description
      },
      button { text, page-> { slug }, url }
    },
    carouselContent {
      title,
      description,
      images[] {
        asset-> { _id, url, metadata { dimensions } },
        alt,
        caption
      }
    },
    faqsContent {
      subtitle,
      image { asset-> { _id, url, metadata { dimensions } } },
      faqs[] { question, answer }
    },
    contactFormContent {
      title,
      description,
      image { asset-> { _id, url, metadata { dimensions } } }
    },
    directionsContent {
      title,
      tabs[] { tabTitle, content },
      mapEmbedCode
    },
    openingTimesAndPricesContent {
      title,
      openingTimes[] { title, time },
      prices[] { category, price },
      informationBlocks[] { title, description },
      image { asset-> { _id, url, metadata { dimensions } } }
    },
    titleAndTextContent {
      title,
      text,
      buttons[] { text, link { page-> { slug { current } }, url } },
      buttonsAboveText
    },
    twoColumnsContent {
      firstColumnWidth,
      leftSlot {
        type,
        image { asset-> { _id, url, metadata { dimensions } } },
        imageAlt,
        mobileWidth,
        alignment,
        text
      },
      rightSlot {
        type,
        image { asset-> { _id, url, metadata { dimensions } } },
        imageAlt,
        mobileWidth,
        alignment,
        text
      }
    },
    blocksContent {
      image { asset-> { _id, url, metadata { dimensions } }, alt },
      blocks[] { text }
    }`

// pageProjection is the full page shape with every section expanded
const pageProjection = `
  _id,
  title,
  slug,
  routeName,
  darkMode,
  borderTop,
  removeTopPadding,
  hideFooter,
  hideHeaderLogo,
  greyBackground,
  backgroundGradientStart,
  backgroundGradientEnd,
  heroVideo { asset-> { _id, url, mimeType, size } },
  heroImage {
    asset-> { _id, url, mimeType, size, metadata { dimensions { width, height } } },
    alt
  },
  sections[]-> {` + sectionProjection + `
  }`

// QueryPageBySlug fetches one page by slug with all sections expanded
const QueryPageBySlug = `*[_type == "page" && slug.current == $identifier][0] {` + pageProjection + `
}`

// QueryPageByRouteName fetches one page by its internal route name
const QueryPageByRouteName = `*[_type == "page" && routeName == $identifier][0] {` + pageProjection + `
}`

// QuerySectionByType fetches one standalone section of the given variant
const QuerySectionByType = `*[_type == "section" && sectionType == $sectionType][0] {` + sectionProjection + `
}`

// QuerySectionByTypeAndTitle additionally filters by exact title
const QuerySectionByTypeAndTitle = `*[_type == "section" && sectionType == $sectionType && title == $title][0] {` + sectionProjection + `
}`

// QuerySectionHomeScroll fetches the home scroll section singleton
const QuerySectionHomeScroll = `*[_type == "sectionHomeScroll"][0] {
  _id,
  title,
  items[] {
    _key,
    title,
    image { asset-> { _id, url, metadata { dimensions } } },
    link { page-> { _id, slug, title }, url }
  }
}`

// QueryServices fetches all services in authoring order
const QueryServices = `*[_type == "service"] | order(orderRank) {
  _id,
  title,
  description,
  bookingLink,
  subservices[] { title, duration, cost }
}`

// QueryTeam fetches all team members in authoring order
const QueryTeam = `*[_type == "team"] | order(orderRank asc) {
  _id,
  name,
  role,
  bio,
  "imageUrl": image.asset->url,
  "imageAlt": image.alt,
  orderRank
}`

// QueryTips fetches all tips in authoring order
const QueryTips = `*[_type == "tips"] | order(orderRank asc) {
  title,
  content,
  image { asset-> },
  backgroundImage { asset-> },
  link { text, url, targetBlank },
  orderRank
}`

// QueryNews fetches all news posts, newest first
const QueryNews = `*[_type == "newsPost"] | order(date desc) {
  _id,
  title,
  slug { current },
  date,
  excerpt,
  content,
  image { asset-> }
}`

// QueryGalleries fetches all galleries with a thumbnail and item count
const QueryGalleries = `*[_type == "gallery"] | order(orderRank asc) {
  _id,
  title,
  "thumbnail": items[0] { _type, asset-> },
  "itemCount": count(items)
}`

// QueryGalleryByID fetches one gallery with fully expanded items
const QueryGalleryByID = `*[_type == "gallery" && _id == $id][0] {
  _id,
  title,
  items[] { _type, asset-> }
}`
